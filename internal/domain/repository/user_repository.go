package repository

import (
	"context"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/entity"
)

// UserRepository define el puerto de lectura de usuarios (login).
type UserRepository interface {
	// FindByEmail devuelve domain.ErrUserNotFound si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
