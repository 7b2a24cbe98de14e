package store

import (
	"context"
	"testing"

	"github.com/fleetdesk/fleetdesk/internal/db"
	"github.com/fleetdesk/fleetdesk/internal/model"
)

func testCar(make, mdl string, year int) *model.Car {
	return &model.Car{
		Make:       make,
		Model:      mdl,
		Year:       year,
		Color:      "blue",
		LicenseNum: "abc-123",
		VIN:        "1G1BE5SM7H7100001",
		VecType:    "sedan",
		Mileage:    "42000",
		InService:  true,
	}
}

func TestCreateAndGetCar(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	car, err := CreateCar(ctx, database, testCar("chevy", "cruise", 2019))
	if err != nil {
		t.Fatalf("CreateCar: %v", err)
	}
	if car.ID == "" {
		t.Error("expected generated UUID id")
	}
	if car.Mileage != "42000" {
		t.Errorf("expected mileage kept as string '42000', got %q", car.Mileage)
	}

	got, err := GetCar(ctx, database, car.ID)
	if err != nil {
		t.Fatalf("GetCar: %v", err)
	}
	if got == nil || got.Make != "chevy" || got.Year != 2019 {
		t.Errorf("unexpected car: %+v", got)
	}
}

func TestGetCarMissing(t *testing.T) {
	database := db.NewTestDB(t)

	car, err := GetCar(context.Background(), database, "no-such-id")
	if err != nil {
		t.Fatalf("GetCar: %v", err)
	}
	if car != nil {
		t.Errorf("expected nil for missing car, got %+v", car)
	}
}

func TestListLotInventory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateCar(ctx, database, testCar("toyota", "corolla", 2021))
	CreateCar(ctx, database, testCar("chevy", "cruise", 2019))
	removed, _ := CreateCar(ctx, database, testCar("ford", "focus", 2018))
	DeleteCar(ctx, database, removed.ID)

	lot, err := ListLotInventory(ctx, database)
	if err != nil {
		t.Fatalf("ListLotInventory: %v", err)
	}
	if len(lot) != 2 {
		t.Fatalf("expected 2 lot rows, got %d", len(lot))
	}
	if lot[0].Make != "chevy" || lot[1].Make != "toyota" {
		t.Errorf("expected make ordering, got %+v", lot)
	}
}

func TestCarPhoto(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	car, _ := CreateCar(ctx, database, testCar("honda", "civic", 2020))
	photoData := []byte("fake photo data")
	if err := SetCarPhoto(ctx, database, car.ID, photoData, "image/jpeg"); err != nil {
		t.Fatalf("SetCarPhoto: %v", err)
	}

	data, mime, err := GetCarPhoto(ctx, database, car.ID)
	if err != nil {
		t.Fatalf("GetCarPhoto: %v", err)
	}
	if string(data) != "fake photo data" {
		t.Errorf("expected photo data, got %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}
}
