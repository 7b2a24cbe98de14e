package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetdesk/fleetdesk/internal/model"
)

// CreateReservation schedules a pickup for a car.
func CreateReservation(ctx context.Context, db *sql.DB, carID string, pickupTime time.Time, status string) (*model.Reservation, error) {
	if status == "" {
		status = model.ReservationStatusScheduled
	}

	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO reservations (id, car_id, pickup_time, status) VALUES (?, ?, ?, ?)`,
		id, carID, pickupTime.UTC(), status,
	)
	if err != nil {
		return nil, fmt.Errorf("creating reservation: %w", err)
	}

	return GetReservation(ctx, db, id)
}

// GetReservation returns a reservation by ID.
func GetReservation(ctx context.Context, db *sql.DB, id string) (*model.Reservation, error) {
	res := &model.Reservation{}
	err := db.QueryRowContext(ctx,
		`SELECT id, car_id, pickup_time, status, created_at
		 FROM reservations WHERE id = ?`, id,
	).Scan(&res.ID, &res.CarID, &res.PickupTime, &res.Status, &res.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting reservation: %w", err)
	}
	return res, nil
}

// ListReservationsOnDate returns all reservations whose pickup time
// falls within the UTC day containing date, ascending by pickup time.
func ListReservationsOnDate(ctx context.Context, db *sql.DB, date time.Time) ([]model.Reservation, error) {
	day := date.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	rows, err := db.QueryContext(ctx,
		`SELECT id, car_id, pickup_time, status, created_at
		 FROM reservations
		 WHERE pickup_time >= ? AND pickup_time < ?
		 ORDER BY pickup_time ASC`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ID, &res.CarID, &res.PickupTime, &res.Status, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// UpdateReservationStatus records a status change for a reservation.
func UpdateReservationStatus(ctx context.Context, db *sql.DB, id, status string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE reservations SET status = ? WHERE id = ?`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("updating reservation status: %w", err)
	}
	return nil
}
