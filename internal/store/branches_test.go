package store

import (
	"context"
	"testing"

	"github.com/fleetdesk/fleetdesk/internal/db"
)

func TestBranchLocationForUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	branch, err := CreateBranch(ctx, database, "Downtown", "100 Main St", "Austin", "tx")
	if err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}

	user, _ := CreateUser(ctx, database, "agent@example.com", "hash", true)
	if err := SetUserBranch(ctx, database, user.ID, branch.ID); err != nil {
		t.Fatalf("SetUserBranch: %v", err)
	}

	got, err := GetBranchLocationForUser(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("GetBranchLocationForUser: %v", err)
	}
	if got == nil {
		t.Fatal("expected branch location")
	}
	if got.Address != "100 Main St" || got.City != "Austin" || got.State != "tx" {
		t.Errorf("unexpected branch: %+v", got)
	}
}

func TestBranchLocationForUserUnassigned(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "agent@example.com", "hash", true)

	got, err := GetBranchLocationForUser(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("GetBranchLocationForUser: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unassigned user, got %+v", got)
	}
}
