package host

import (
	"context"

	hostRepo "slotbook/database/repository/host"
	"slotbook/models"
)

// HostService manages host accounts: registration, authentication and the
// public profile behind a nickname link.
type HostService interface {
	Register(ctx context.Context, email, password, nickname string) (*models.Host, error)
	Authenticate(ctx context.Context, email, password string) (string, *models.Host, error)
	GetByNickname(ctx context.Context, nickname string) (*models.Host, error)
	UpdateAdditionalInfo(ctx context.Context, hostID, info string) error
}

// DefaultHostService implements HostService.
type DefaultHostService struct {
	Repo hostRepo.HostRepository
}
