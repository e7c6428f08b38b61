package repository

import (
	"context"
	"errors"
	"fmt"

	"minimal_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// AdministratorRepository defines operations for administrator data
type AdministratorRepository interface {
	Create(ctx context.Context, admin *model.Administrator) error
	FindByCredentials(ctx context.Context, email, password string) (*model.Administrator, error)
	FindByEmail(ctx context.Context, email string) (*model.Administrator, error)
	FindByID(ctx context.Context, id int) (*model.Administrator, error)
	FindAll(ctx context.Context) ([]model.Administrator, error)
	FindPage(ctx context.Context, page, size int) ([]model.Administrator, error)
}

type administratorRepository struct {
	db DB
}

// NewAdministratorRepository creates a new AdministratorRepository
func NewAdministratorRepository(db DB) AdministratorRepository {
	return &administratorRepository{db: db}
}

const administratorColumns = `id, email, senha, perfil`

// Create inserts a new administrator into the database
func (r *administratorRepository) Create(ctx context.Context, a *model.Administrator) error {
	sql := `INSERT INTO administradores (email, senha, perfil) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, a.Email, a.Password, a.Role.String()).Scan(&a.ID); err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}
	return nil
}

// FindByCredentials looks up an administrator matching both email and password exactly
func (r *administratorRepository) FindByCredentials(ctx context.Context, email, password string) (*model.Administrator, error) {
	sql := `SELECT ` + administratorColumns + ` FROM administradores WHERE email = $1 AND senha = $2 LIMIT 1`
	return r.findOne(ctx, sql, "failed to find administrator by credentials", email, password)
}

// FindByEmail retrieves the first administrator registered with the email
func (r *administratorRepository) FindByEmail(ctx context.Context, email string) (*model.Administrator, error) {
	sql := `SELECT ` + administratorColumns + ` FROM administradores WHERE email = $1 ORDER BY id LIMIT 1`
	return r.findOne(ctx, sql, "failed to find administrator by email", email)
}

// FindByID retrieves an administrator by ID
func (r *administratorRepository) FindByID(ctx context.Context, id int) (*model.Administrator, error) {
	sql := `SELECT ` + administratorColumns + ` FROM administradores WHERE id = $1`
	return r.findOne(ctx, sql, "failed to find administrator by ID", id)
}

// FindAll retrieves every administrator, unpaged
func (r *administratorRepository) FindAll(ctx context.Context) ([]model.Administrator, error) {
	sql := `SELECT ` + administratorColumns + ` FROM administradores ORDER BY id`
	return r.findMany(ctx, sql)
}

// FindPage retrieves one page of administrators ordered by ID
func (r *administratorRepository) FindPage(ctx context.Context, page, size int) ([]model.Administrator, error) {
	limit, offset := pageBounds(page, size)
	sql := `SELECT ` + administratorColumns + ` FROM administradores ORDER BY id LIMIT $1 OFFSET $2`
	return r.findMany(ctx, sql, limit, offset)
}

func (r *administratorRepository) findOne(ctx context.Context, sql, errMsg string, args ...any) (*model.Administrator, error) {
	a := &model.Administrator{}
	var role string
	err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.Email, &a.Password, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Administrator not found
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	a.Role = model.ParseRole(role)
	return a, nil
}

func (r *administratorRepository) findMany(ctx context.Context, sql string, args ...any) ([]model.Administrator, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query administrators: %w", err)
	}
	defer rows.Close()

	admins := []model.Administrator{}
	for rows.Next() {
		var a model.Administrator
		var role string
		if err := rows.Scan(&a.ID, &a.Email, &a.Password, &role); err != nil {
			return nil, fmt.Errorf("failed to scan administrator row: %w", err)
		}
		a.Role = model.ParseRole(role)
		admins = append(admins, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating administrator rows: %w", err)
	}
	return admins, nil
}
