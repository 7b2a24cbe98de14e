package model

import "time"

// Car represents a vehicle tracked on the rental lot.
//
// Mileage is stored and transported as a string and only parsed to an
// integer for display, matching the upstream odometer feed.
type Car struct {
	ID         string     `json:"id"`
	Make       string     `json:"make"`
	Model      string     `json:"model"`
	Year       int        `json:"year"`
	Color      string     `json:"color"`
	LicenseNum string     `json:"license_num"`
	VIN        string     `json:"vin"`
	VecType    string     `json:"vec_type"`
	Mileage    string     `json:"mileage"`
	InService  bool       `json:"in_service"`
	PhotoMime  string     `json:"photo_mime,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// LotRow is the projection of a Car used by the lot inventory table.
type LotRow struct {
	ID    string `json:"id"`
	Year  int    `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`
}
