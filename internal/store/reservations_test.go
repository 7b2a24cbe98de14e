package store

import (
	"context"
	"testing"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/db"
	"github.com/fleetdesk/fleetdesk/internal/model"
)

func TestCreateReservationDefaults(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	car, _ := CreateCar(ctx, database, testCar("chevy", "cruise", 2019))
	res, err := CreateReservation(ctx, database, car.ID, time.Now(), "")
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if res.Status != model.ReservationStatusScheduled {
		t.Errorf("expected default status 'scheduled', got %q", res.Status)
	}
	if res.CarID != car.ID {
		t.Errorf("expected car id %q, got %q", car.ID, res.CarID)
	}
}

func TestListReservationsOnDateBounds(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	car, _ := CreateCar(ctx, database, testCar("chevy", "cruise", 2019))
	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// Outside the day on both sides.
	CreateReservation(ctx, database, car.ID, day.Add(-time.Minute), "")
	CreateReservation(ctx, database, car.ID, day.Add(24*time.Hour), "")

	// Inside the day, inserted out of order.
	CreateReservation(ctx, database, car.ID, day.Add(17*time.Hour), "")
	CreateReservation(ctx, database, car.ID, day, "")
	CreateReservation(ctx, database, car.ID, day.Add(23*time.Hour+59*time.Minute+59*time.Second), "")

	reservations, err := ListReservationsOnDate(ctx, database, day.Add(13*time.Hour))
	if err != nil {
		t.Fatalf("ListReservationsOnDate: %v", err)
	}
	if len(reservations) != 3 {
		t.Fatalf("expected 3 reservations in day, got %d", len(reservations))
	}
	for i := 1; i < len(reservations); i++ {
		if reservations[i].PickupTime.Before(reservations[i-1].PickupTime) {
			t.Errorf("expected ascending pickup times, got %v before %v",
				reservations[i-1].PickupTime, reservations[i].PickupTime)
		}
	}
}

func TestListReservationsOnDateEmpty(t *testing.T) {
	database := db.NewTestDB(t)

	reservations, err := ListReservationsOnDate(context.Background(), database, time.Now())
	if err != nil {
		t.Fatalf("ListReservationsOnDate: %v", err)
	}
	if len(reservations) != 0 {
		t.Errorf("expected no reservations, got %d", len(reservations))
	}
}

func TestUpdateReservationStatus(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	car, _ := CreateCar(ctx, database, testCar("chevy", "cruise", 2019))
	res, _ := CreateReservation(ctx, database, car.ID, time.Now(), "")

	if err := UpdateReservationStatus(ctx, database, res.ID, model.ReservationStatusCancelled); err != nil {
		t.Fatalf("UpdateReservationStatus: %v", err)
	}

	got, _ := GetReservation(ctx, database, res.ID)
	if got.Status != model.ReservationStatusCancelled {
		t.Errorf("expected status 'cancelled', got %q", got.Status)
	}

	// Unknown statuses are stored as-is.
	if err := UpdateReservationStatus(ctx, database, res.ID, "no-show"); err != nil {
		t.Fatalf("UpdateReservationStatus: %v", err)
	}
	got, _ = GetReservation(ctx, database, res.ID)
	if got.Status != "no-show" {
		t.Errorf("expected open status 'no-show', got %q", got.Status)
	}
}
