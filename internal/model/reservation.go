package model

import "time"

// Reservation represents a scheduled pickup for a car on the lot.
type Reservation struct {
	ID         string    `json:"id"`
	CarID      string    `json:"car_id"`
	PickupTime time.Time `json:"pickup_time"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Reservation statuses with dedicated display treatment. Status is an
// open string: unknown values are stored and rendered neutrally.
const (
	ReservationStatusScheduled = "scheduled"
	ReservationStatusCompleted = "completed"
	ReservationStatusCancelled = "cancelled"
)
