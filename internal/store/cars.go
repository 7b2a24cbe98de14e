package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetdesk/fleetdesk/internal/model"
)

// CreateCar adds a car to the lot. A missing ID is assigned a fresh UUID.
func CreateCar(ctx context.Context, db *sql.DB, car *model.Car) (*model.Car, error) {
	if car.ID == "" {
		car.ID = uuid.NewString()
	}
	if car.Mileage == "" {
		car.Mileage = "0"
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO cars (id, make, model, year, color, license_num, vin, vec_type, mileage, in_service)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		car.ID, car.Make, car.Model, car.Year, car.Color, car.LicenseNum,
		car.VIN, car.VecType, car.Mileage, car.InService,
	)
	if err != nil {
		return nil, fmt.Errorf("creating car: %w", err)
	}

	return GetCar(ctx, db, car.ID)
}

// GetCar returns a car by ID.
func GetCar(ctx context.Context, db *sql.DB, id string) (*model.Car, error) {
	car := &model.Car{}
	var photoMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, make, model, year, color, license_num, vin, vec_type, mileage,
		        in_service, photo_mime, created_at, deleted_at
		 FROM cars WHERE id = ?`, id,
	).Scan(&car.ID, &car.Make, &car.Model, &car.Year, &car.Color, &car.LicenseNum,
		&car.VIN, &car.VecType, &car.Mileage, &car.InService, &photoMime,
		&car.CreatedAt, &car.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting car: %w", err)
	}
	car.PhotoMime = photoMime.String
	return car, nil
}

// ListLotInventory returns the id/year/make/model projection of every
// active car on the lot. The full set is materialized; filtering and
// pagination happen in memory at the presentation layer.
func ListLotInventory(ctx context.Context, db *sql.DB) ([]model.LotRow, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, year, make, model FROM cars
		 WHERE deleted_at IS NULL ORDER BY make, model, year`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing lot inventory: %w", err)
	}
	defer rows.Close()

	var lot []model.LotRow
	for rows.Next() {
		var row model.LotRow
		if err := rows.Scan(&row.ID, &row.Year, &row.Make, &row.Model); err != nil {
			return nil, fmt.Errorf("scanning lot row: %w", err)
		}
		lot = append(lot, row)
	}
	return lot, rows.Err()
}

// DeleteCar soft-deletes a car, removing it from the lot listing.
func DeleteCar(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE cars SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting car: %w", err)
	}
	return nil
}

// SetCarPhoto sets a car's photo data.
func SetCarPhoto(ctx context.Context, db *sql.DB, id string, photo []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE cars SET photo = ?, photo_mime = ? WHERE id = ? AND deleted_at IS NULL`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting car photo: %w", err)
	}
	return nil
}

// GetCarPhoto returns a car's photo data and MIME type.
func GetCarPhoto(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM cars WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting car photo: %w", err)
	}
	return photo, mime.String, nil
}
