package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fleetdesk/fleetdesk/internal/model"
)

// CreateBranch creates a rental branch.
func CreateBranch(ctx context.Context, db *sql.DB, name, address, city, state string) (*model.BranchLocation, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO branches (name, address, city, state) VALUES (?, ?, ?, ?)`,
		name, address, city, state,
	)
	if err != nil {
		return nil, fmt.Errorf("creating branch: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting branch id: %w", err)
	}

	return GetBranch(ctx, db, id)
}

// GetBranch returns a branch by ID.
func GetBranch(ctx context.Context, db *sql.DB, id int64) (*model.BranchLocation, error) {
	b := &model.BranchLocation{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, address, city, state FROM branches WHERE id = ?`, id,
	).Scan(&b.ID, &b.Name, &b.Address, &b.City, &b.State)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting branch: %w", err)
	}
	return b, nil
}

// GetBranchLocationForUser returns the branch assigned to a user, or
// (nil, nil) when the user has no branch assignment.
func GetBranchLocationForUser(ctx context.Context, db *sql.DB, userID int64) (*model.BranchLocation, error) {
	b := &model.BranchLocation{}
	err := db.QueryRowContext(ctx,
		`SELECT b.id, b.name, b.address, b.city, b.state
		 FROM branches b
		 JOIN users u ON u.branch_id = b.id
		 WHERE u.id = ? AND u.deleted_at IS NULL`, userID,
	).Scan(&b.ID, &b.Name, &b.Address, &b.City, &b.State)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting branch location for user: %w", err)
	}
	return b, nil
}
