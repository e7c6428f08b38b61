package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"minimal_api/internal/model"
	"minimal_api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateVehicle(t *testing.T) {
	env := newTestEnv(t)
	dto := model.VehicleDTO{Name: "Fusca", Brand: "Volkswagen", Year: 1970}
	env.vehicles.On("Create", mock.Anything, dto).
		Return(&model.Vehicle{ID: 1, Name: "Fusca", Brand: "Volkswagen", Year: 1970}, nil).Once()

	w := env.do(t, http.MethodPost, "/veiculos", `{"Nome":"Fusca","Marca":"Volkswagen","Ano":1970}`, model.RoleEditor)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/veiculo/1", w.Header().Get("Location"))
	assert.JSONEq(t, `{"Id":1,"Nome":"Fusca","Marca":"Volkswagen","Ano":1970}`, w.Body.String())
}

func TestCreateVehicle_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "too old",
			body: `{"Nome":"Ford T","Marca":"Ford","Ano":1927}`,
			want: []string{"vehicle too old, only years ≥ 1950 accepted"},
		},
		{
			name: "name longer than the column",
			body: `{"Nome":"` + strings.Repeat("x", 151) + `","Marca":"Ford","Ano":2000}`,
			want: []string{"name must be at most 150 characters"},
		},
		{
			name: "everything wrong",
			body: `{"Nome":"","Marca":"  ","Ano":1900}`,
			want: []string{
				"name must not be empty",
				"brand must not be empty",
				"vehicle too old, only years ≥ 1950 accepted",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			w := env.do(t, http.MethodPost, "/veiculos", tt.body, model.RoleAdmin)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp model.ValidationErrors
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Messages)
			env.vehicles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestListVehicles(t *testing.T) {
	env := newTestEnv(t)
	firstPage := []model.Vehicle{{ID: 1, Name: "Fusca", Brand: "Volkswagen", Year: 1970}}
	env.vehicles.On("ListPaged", mock.Anything, 1).Return(firstPage, nil).Once()
	env.vehicles.On("ListPaged", mock.Anything, 3).Return(nil, nil).Once()

	w := env.do(t, http.MethodGet, "/veiculos", "", model.RoleEditor)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"Id":1,"Nome":"Fusca","Marca":"Volkswagen","Ano":1970}]`, w.Body.String())

	empty := env.do(t, http.MethodGet, "/veiculos?pagina=3", "", model.RoleEditor)
	assert.Equal(t, http.StatusOK, empty.Code)
	assert.JSONEq(t, `[]`, empty.Body.String())

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/veiculos", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/veiculos?pagina=x", "", model.RoleAdmin).Code)
}

func TestGetVehicle(t *testing.T) {
	env := newTestEnv(t)
	env.vehicles.On("FindByID", mock.Anything, 1).
		Return(&model.Vehicle{ID: 1, Name: "Fusca", Brand: "Volkswagen", Year: 1970}, nil).Once()
	env.vehicles.On("FindByID", mock.Anything, 42).Return(nil, service.ErrVehicleNotFound).Once()

	found := env.do(t, http.MethodGet, "/veiculo/1", "", model.RoleEditor)
	assert.Equal(t, http.StatusOK, found.Code)
	assert.JSONEq(t, `{"Id":1,"Nome":"Fusca","Marca":"Volkswagen","Ano":1970}`, found.Body.String())

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/veiculo/42", "", model.RoleEditor).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/veiculo/abc", "", model.RoleEditor).Code)
}

func TestUpdateVehicle(t *testing.T) {
	env := newTestEnv(t)
	env.vehicles.On("FindByID", mock.Anything, 1).
		Return(&model.Vehicle{ID: 1, Name: "Fusca", Brand: "Volkswagen", Year: 1970}, nil).Once()
	updated := &model.Vehicle{ID: 1, Name: "Fusca Itamar", Brand: "Volkswagen", Year: 1994}
	env.vehicles.On("Update", mock.Anything, updated).Return(nil).Once()

	w := env.do(t, http.MethodPut, "/veiculo/1", `{"Nome":"Fusca Itamar","Marca":"Volkswagen","Ano":1994}`, model.RoleAdmin)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"Id":1,"Nome":"Fusca Itamar","Marca":"Volkswagen","Ano":1994}`, w.Body.String())
}

func TestUpdateVehicle_MissingIsNotFoundBeforeValidation(t *testing.T) {
	env := newTestEnv(t)
	env.vehicles.On("FindByID", mock.Anything, 404).Return(nil, service.ErrVehicleNotFound).Once()

	// invalid body, but absence is reported first
	w := env.do(t, http.MethodPut, "/veiculo/404", `{"Nome":"","Marca":"","Ano":1}`, model.RoleAdmin)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env.vehicles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateVehicle_InvalidBody(t *testing.T) {
	env := newTestEnv(t)
	env.vehicles.On("FindByID", mock.Anything, 1).
		Return(&model.Vehicle{ID: 1, Name: "Fusca", Brand: "Volkswagen", Year: 1970}, nil).Twice()

	invalid := env.do(t, http.MethodPut, "/veiculo/1", `{"Nome":"Fusca","Marca":"Volkswagen","Ano":1949}`, model.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)
	assert.Contains(t, invalid.Body.String(), "vehicle too old")

	malformed := env.do(t, http.MethodPut, "/veiculo/1", `not json`, model.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, malformed.Code)

	env.vehicles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteVehicle(t *testing.T) {
	env := newTestEnv(t)
	vehicle := &model.Vehicle{ID: 1, Name: "Fusca", Brand: "Volkswagen", Year: 1970}
	env.vehicles.On("FindByID", mock.Anything, 1).Return(vehicle, nil).Once()
	env.vehicles.On("Delete", mock.Anything, vehicle).Return(nil).Once()
	env.vehicles.On("FindByID", mock.Anything, 2).Return(nil, service.ErrVehicleNotFound).Once()

	w := env.do(t, http.MethodDelete, "/veiculo/1", "", model.RoleAdmin)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/veiculo/2", "", model.RoleAdmin).Code)
}

func TestDeleteVehicle_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	vehicle := &model.Vehicle{ID: 3, Name: "Gol", Brand: "Volkswagen", Year: 1990}
	env.vehicles.On("FindByID", mock.Anything, 3).Return(vehicle, nil).Once()
	env.vehicles.On("Delete", mock.Anything, vehicle).Return(errors.New("deadlock detected")).Once()

	w := env.do(t, http.MethodDelete, "/veiculo/3", "", model.RoleAdmin)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "deadlock")
}

func TestVehicleRoutes_Roles(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		method string
		path   string
		role   model.Role
		want   int
	}{
		{"editor cannot update", http.MethodPut, "/veiculo/1", model.RoleEditor, http.StatusForbidden},
		{"editor cannot delete", http.MethodDelete, "/veiculo/1", model.RoleEditor, http.StatusForbidden},
		{"anonymous cannot create", http.MethodPost, "/veiculos", "", http.StatusUnauthorized},
		{"anonymous cannot read", http.MethodGet, "/veiculo/1", "", http.StatusUnauthorized},
		{"anonymous cannot delete", http.MethodDelete, "/veiculo/1", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, tt.method, tt.path, `{"Nome":"Gol","Marca":"VW","Ano":1990}`, tt.role)
			assert.Equal(t, tt.want, w.Code)
		})
	}
	env.vehicles.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
