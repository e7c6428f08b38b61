// Package seed loads administrators from a YAML file and registers the ones
// that do not exist yet.
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"minimal_api/internal/model"
	"minimal_api/internal/service"
	"minimal_api/internal/validation"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type file struct {
	Administrators []entry `yaml:"administradores"`
}

type entry struct {
	Email    string `yaml:"email"`
	Password string `yaml:"senha"`
	Role     string `yaml:"perfil"`
}

// Load parses a seed file. An entry without perfil is seeded as Editor;
// every entry must then pass administrator validation.
func Load(path string) ([]model.AdministratorDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	dtos := make([]model.AdministratorDTO, 0, len(f.Administrators))
	for i, e := range f.Administrators {
		role := strings.TrimSpace(e.Role)
		if role == "" {
			role = model.RoleEditor.String()
		}
		dto := model.AdministratorDTO{Email: e.Email, Password: e.Password, Role: &role}
		if msgs := validation.Administrator(dto); len(msgs) > 0 {
			return nil, fmt.Errorf("seed entry %d: %v", i, msgs)
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

// Run loads path and registers the missing administrators through svc
func Run(ctx context.Context, svc service.AdministratorService, path string, log *zap.Logger) error {
	dtos, err := Load(path)
	if err != nil {
		return err
	}
	created, err := svc.EnsureSeeded(ctx, dtos)
	if err != nil {
		return fmt.Errorf("seed administrators: %w", err)
	}
	log.Info("seed file applied", zap.String("path", path), zap.Int("entries", len(dtos)), zap.Int("created", created))
	return nil
}
