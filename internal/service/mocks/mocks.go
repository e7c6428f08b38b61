// Package mocks provides testify mocks of the service interfaces.
package mocks

import (
	"context"

	"minimal_api/internal/model"

	"github.com/stretchr/testify/mock"
)

// AdministratorService is a mock of service.AdministratorService
type AdministratorService struct {
	mock.Mock
}

func (m *AdministratorService) Login(ctx context.Context, email, password string) (*model.Administrator, error) {
	args := m.Called(ctx, email, password)
	admin, _ := args.Get(0).(*model.Administrator)
	return admin, args.Error(1)
}

func (m *AdministratorService) Create(ctx context.Context, dto model.AdministratorDTO) (*model.Administrator, error) {
	args := m.Called(ctx, dto)
	admin, _ := args.Get(0).(*model.Administrator)
	return admin, args.Error(1)
}

func (m *AdministratorService) ListPaged(ctx context.Context, page *int) ([]model.Administrator, error) {
	args := m.Called(ctx, page)
	admins, _ := args.Get(0).([]model.Administrator)
	return admins, args.Error(1)
}

func (m *AdministratorService) FindByID(ctx context.Context, id int) (*model.Administrator, error) {
	args := m.Called(ctx, id)
	admin, _ := args.Get(0).(*model.Administrator)
	return admin, args.Error(1)
}

func (m *AdministratorService) EnsureSeeded(ctx context.Context, seeds []model.AdministratorDTO) (int, error) {
	args := m.Called(ctx, seeds)
	return args.Int(0), args.Error(1)
}

// VehicleService is a mock of service.VehicleService
type VehicleService struct {
	mock.Mock
}

func (m *VehicleService) Create(ctx context.Context, dto model.VehicleDTO) (*model.Vehicle, error) {
	args := m.Called(ctx, dto)
	v, _ := args.Get(0).(*model.Vehicle)
	return v, args.Error(1)
}

func (m *VehicleService) ListPaged(ctx context.Context, page int) ([]model.Vehicle, error) {
	args := m.Called(ctx, page)
	vehicles, _ := args.Get(0).([]model.Vehicle)
	return vehicles, args.Error(1)
}

func (m *VehicleService) FindByID(ctx context.Context, id int) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.Vehicle)
	return v, args.Error(1)
}

func (m *VehicleService) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *VehicleService) Delete(ctx context.Context, vehicle *model.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}
