package hostRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/config"
	"slotbook/database"
	"slotbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNicknameTaken is returned when a host registration collides with an
// existing nickname or email. Collisions are surfaced, never auto-resolved.
var ErrNicknameTaken = fmt.Errorf("nickname or email already taken")

type HostRepository interface {
	Create(ctx context.Context, host *models.Host) error
	GetByID(ctx context.Context, uid string) (*models.Host, error)
	GetByEmail(ctx context.Context, email string) (*models.Host, error)
	GetByNickname(ctx context.Context, nickname string) (*models.Host, error)
	UpdateAdditionalInfo(ctx context.Context, uid, info string) error
}

type mongoHostRepo struct {
	coll *mongo.Collection
}

// NewMongoHostRepo constructs a new MongoDB HostRepository.
func NewMongoHostRepo() HostRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoHostRepo{coll: db.Collection("hosts")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
