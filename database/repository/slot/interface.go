package slotRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/config"
	"slotbook/database"
	"slotbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository stores a host's declared time windows, one collection per
// kind: availability windows and personal busy blocks. Writes are full
// replaces of a date's collection; removal is modeled by putting back the
// reduced sequence.
type SlotRepository interface {
	GetByHostAndDate(ctx context.Context, hostID, date string) ([]models.TimeSlot, error)
	// ReplaceForDate replaces a host's full slot collection for one date.
	ReplaceForDate(ctx context.Context, hostID, date string, slots []models.TimeSlot) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a SlotRepository backed by the collection for
// the given kind ("available_slots" or "busy_slots").
func NewMongoSlotRepo(kind models.SlotKind) SlotRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	name := "available_slots"
	if kind == models.SlotKindBusy {
		name = "busy_slots"
	}
	repo := &mongoSlotRepo{coll: db.Collection(name)}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
