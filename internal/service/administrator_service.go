package service

import (
	"context"
	"errors"
	"fmt"

	"minimal_api/internal/model"
	"minimal_api/internal/repository"
	"minimal_api/internal/utils"
)

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrAdministratorNotFound = errors.New("administrator not found")
)

// AdministratorService provides administrator authentication and management
type AdministratorService interface {
	Login(ctx context.Context, email, password string) (*model.Administrator, error)
	Create(ctx context.Context, dto model.AdministratorDTO) (*model.Administrator, error)
	ListPaged(ctx context.Context, page *int) ([]model.Administrator, error)
	FindByID(ctx context.Context, id int) (*model.Administrator, error)
	EnsureSeeded(ctx context.Context, seeds []model.AdministratorDTO) (int, error)
}

type administratorService struct {
	repo          repository.AdministratorRepository
	hashPasswords bool
}

// NewAdministratorService creates a new AdministratorService.
// With hashPasswords disabled, credentials are stored and compared as plain text.
func NewAdministratorService(repo repository.AdministratorRepository, hashPasswords bool) AdministratorService {
	return &administratorService{repo: repo, hashPasswords: hashPasswords}
}

// Login returns the administrator whose credentials match
func (s *administratorService) Login(ctx context.Context, email, password string) (*model.Administrator, error) {
	if !s.hashPasswords {
		admin, err := s.repo.FindByCredentials(ctx, email, password)
		if err != nil {
			return nil, fmt.Errorf("error finding administrator by credentials: %w", err)
		}
		if admin == nil {
			return nil, ErrInvalidCredentials
		}
		return admin, nil
	}

	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error finding administrator by email: %w", err)
	}
	if admin == nil || !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// Create registers a new administrator. The DTO is expected to be validated already;
// an unknown profile becomes Editor.
func (s *administratorService) Create(ctx context.Context, dto model.AdministratorDTO) (*model.Administrator, error) {
	role := model.RoleEditor
	if dto.Role != nil {
		role = model.ParseRole(*dto.Role)
	}

	password := dto.Password
	if s.hashPasswords {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		password = hashed
	}

	admin := &model.Administrator{
		Email:    dto.Email,
		Password: password,
		Role:     role,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create administrator in repo: %w", err)
	}
	return admin, nil
}

// ListPaged returns one page of administrators, or all of them when page is nil
func (s *administratorService) ListPaged(ctx context.Context, page *int) ([]model.Administrator, error) {
	var (
		admins []model.Administrator
		err    error
	)
	if page == nil {
		admins, err = s.repo.FindAll(ctx)
	} else {
		admins, err = s.repo.FindPage(ctx, *page, model.DefaultPageSize)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list administrators: %w", err)
	}
	return admins, nil
}

func (s *administratorService) FindByID(ctx context.Context, id int) (*model.Administrator, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find administrator by ID: %w", err)
	}
	if admin == nil {
		return nil, ErrAdministratorNotFound
	}
	return admin, nil
}

// EnsureSeeded creates every seed administrator whose email is not registered yet.
// It returns how many were created.
func (s *administratorService) EnsureSeeded(ctx context.Context, seeds []model.AdministratorDTO) (int, error) {
	created := 0
	for _, seed := range seeds {
		existing, err := s.repo.FindByEmail(ctx, seed.Email)
		if err != nil {
			return created, fmt.Errorf("failed to check seed administrator %s: %w", seed.Email, err)
		}
		if existing != nil {
			continue
		}
		if _, err := s.Create(ctx, seed); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
