package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"minimal_api/internal/metrics"
	"minimal_api/internal/model"
	"minimal_api/internal/service/mocks"
	"minimal_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "handler-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testEnv struct {
	router   *gin.Engine
	admins   *mocks.AdministratorService
	vehicles *mocks.VehicleService
	jwt      *utils.JWTUtil
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWith(t, testSecret, fakePinger{})
}

func newTestEnvWith(t *testing.T, secret string, db Pinger) *testEnv {
	t.Helper()
	env := &testEnv{
		admins:   new(mocks.AdministratorService),
		vehicles: new(mocks.VehicleService),
		jwt:      utils.NewJWTUtil(secret, 1),
	}
	env.router = NewRouter(RouterDeps{
		Logger:         zap.NewNop(),
		Metrics:        metrics.New(),
		JWT:            env.jwt,
		DB:             db,
		Administrators: env.admins,
		Vehicles:       env.vehicles,
	})
	t.Cleanup(func() {
		env.admins.AssertExpectations(t)
		env.vehicles.AssertExpectations(t)
	})
	return env
}

func (e *testEnv) token(t *testing.T, role model.Role) string {
	t.Helper()
	token, err := utils.NewJWTUtil(testSecret, 1).GenerateToken(&model.Administrator{ID: 1, Email: "tester@teste.com", Role: role})
	require.NoError(t, err)
	return token
}

// do sends a request; role "" means no Authorization header
func (e *testEnv) do(t *testing.T, method, path, body string, role model.Role) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+e.token(t, role))
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
