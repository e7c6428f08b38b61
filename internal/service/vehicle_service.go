package service

import (
	"context"
	"errors"
	"fmt"

	"minimal_api/internal/model"
	"minimal_api/internal/repository"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleService defines operations for vehicles
type VehicleService interface {
	Create(ctx context.Context, dto model.VehicleDTO) (*model.Vehicle, error)
	ListPaged(ctx context.Context, page int) ([]model.Vehicle, error)
	FindByID(ctx context.Context, id int) (*model.Vehicle, error)
	Update(ctx context.Context, vehicle *model.Vehicle) error
	Delete(ctx context.Context, vehicle *model.Vehicle) error
}

type vehicleService struct {
	repo repository.VehicleRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

func (s *vehicleService) Create(ctx context.Context, dto model.VehicleDTO) (*model.Vehicle, error) {
	vehicle := &model.Vehicle{
		Name:  dto.Name,
		Brand: dto.Brand,
		Year:  dto.Year,
	}
	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle in repo: %w", err)
	}
	return vehicle, nil
}

func (s *vehicleService) ListPaged(ctx context.Context, page int) ([]model.Vehicle, error) {
	vehicles, err := s.repo.FindPage(ctx, page, model.DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles from repo: %w", err)
	}
	return vehicles, nil
}

func (s *vehicleService) FindByID(ctx context.Context, id int) (*model.Vehicle, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle by ID: %w", err)
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

// Update overwrites the stored vehicle. Callers must check that it exists first.
func (s *vehicleService) Update(ctx context.Context, vehicle *model.Vehicle) error {
	if err := s.repo.Update(ctx, vehicle); err != nil {
		return fmt.Errorf("failed to update vehicle in repo: %w", err)
	}
	return nil
}

// Delete removes the vehicle. Callers must check that it exists first.
func (s *vehicleService) Delete(ctx context.Context, vehicle *model.Vehicle) error {
	if err := s.repo.Delete(ctx, vehicle.ID); err != nil {
		return fmt.Errorf("failed to delete vehicle in repo: %w", err)
	}
	return nil
}
