package model

import "strings"

// Role is the access profile carried by an administrator
type Role string

const (
	RoleAdmin  Role = "Adm"
	RoleEditor Role = "Editor"
)

// ParseRole maps a free-form profile string onto a known Role.
// Anything that is not a known role falls back to RoleEditor.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleEditor
}

func (r Role) String() string {
	return string(r)
}

// Administrator represents an API operator
type Administrator struct {
	ID       int    `json:"Id"`
	Email    string `json:"Email"`
	Password string `json:"-"` // Never exposed in responses
	Role     Role   `json:"Perfil"`
}

// AdministratorDTO is the payload for registering a new administrator
type AdministratorDTO struct {
	Email    string  `json:"Email" validate:"notblank,max=255"`
	Password string  `json:"Senha" validate:"notblank,max=255"`
	Role     *string `json:"Perfil" validate:"required"` // Pointer so an absent profile can be told apart from an unknown one
}

// AdministratorView is the public representation of an administrator
type AdministratorView struct {
	ID    int    `json:"Id"`
	Email string `json:"Email"`
	Role  Role   `json:"Perfil"`
}

// NewAdministratorView strips the credentials from an administrator
func NewAdministratorView(a *Administrator) AdministratorView {
	return AdministratorView{ID: a.ID, Email: a.Email, Role: a.Role}
}

// LoginDTO carries the credentials presented on login
type LoginDTO struct {
	Email    string `json:"Email"`
	Password string `json:"Senha"`
}

// LoggedAdministrator is returned after a successful login
type LoggedAdministrator struct {
	Email string `json:"Email"`
	Role  Role   `json:"Perfil"`
	Token string `json:"Token"`
}
