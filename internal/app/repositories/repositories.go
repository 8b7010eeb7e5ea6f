package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds the identity database repositories
type Repositories struct {
	ProfileRepository *ProfileRepository
	RoleRepository    *RoleRepository
	OTPRepository     *OTPRepository
}

// NewRepositories initializes all identity repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProfileRepository: NewProfileRepository(db),
		RoleRepository:    NewRoleRepository(db),
		OTPRepository:     NewOTPRepository(db),
	}
}
