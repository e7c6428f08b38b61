package repository

import (
	"context"
	"errors"
	"fmt"

	"minimal_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// VehicleRepository defines operations for vehicle data
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	FindByID(ctx context.Context, id int) (*model.Vehicle, error)
	FindPage(ctx context.Context, page, size int) ([]model.Vehicle, error)
	Update(ctx context.Context, vehicle *model.Vehicle) error
	Delete(ctx context.Context, id int) error
}

type vehicleRepository struct {
	db DB
}

// NewVehicleRepository creates a new VehicleRepository
func NewVehicleRepository(db DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

// Create inserts a new vehicle and fills in its generated ID
func (r *vehicleRepository) Create(ctx context.Context, v *model.Vehicle) error {
	sql := `INSERT INTO veiculos (nome, marca, ano) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, v.Name, v.Brand, v.Year).Scan(&v.ID); err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// FindByID retrieves a vehicle by its ID
func (r *vehicleRepository) FindByID(ctx context.Context, id int) (*model.Vehicle, error) {
	v := &model.Vehicle{}
	sql := `SELECT id, nome, marca, ano FROM veiculos WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&v.ID, &v.Name, &v.Brand, &v.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find vehicle by ID: %w", err)
	}
	return v, nil
}

// FindPage retrieves one page of vehicles ordered by ID
func (r *vehicleRepository) FindPage(ctx context.Context, page, size int) ([]model.Vehicle, error) {
	limit, offset := pageBounds(page, size)
	sql := `SELECT id, nome, marca, ano FROM veiculos ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, sql, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]model.Vehicle, 0, limit)
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Brand, &v.Year); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicle rows: %w", err)
	}
	return vehicles, nil
}

// Update overwrites name, brand and year. A missing ID is not an error.
func (r *vehicleRepository) Update(ctx context.Context, v *model.Vehicle) error {
	sql := `UPDATE veiculos SET nome = $1, marca = $2, ano = $3 WHERE id = $4`
	if _, err := r.db.Exec(ctx, sql, v.Name, v.Brand, v.Year, v.ID); err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// Delete removes a vehicle. A missing ID is not an error.
func (r *vehicleRepository) Delete(ctx context.Context, id int) error {
	sql := `DELETE FROM veiculos WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}
