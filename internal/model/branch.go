package model

// BranchLocation is the physical rental branch assigned to a user.
type BranchLocation struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}
