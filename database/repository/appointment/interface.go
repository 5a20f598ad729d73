package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/config"
	"slotbook/database"
	"slotbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrRangeTaken is returned by Create when an appointment with the same
// host, date and range already exists. The unique index makes the insert
// conditional, which is what closes the double-booking race.
var ErrRangeTaken = fmt.Errorf("an appointment with this range already exists")

type AppointmentRepository interface {
	// Create inserts the appointment, conditional on no existing
	// appointment with the same (hostId, date, start, end).
	Create(ctx context.Context, appt *models.Appointment) (string, error)
	GetByHostAndDate(ctx context.Context, hostID, date string) ([]models.Appointment, error)
	// GetUpcomingByHost lists appointments on or after the given date,
	// ordered by date then start, for the host dashboard.
	GetUpcomingByHost(ctx context.Context, hostID, fromDate string) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoAppointmentRepo{coll: db.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
