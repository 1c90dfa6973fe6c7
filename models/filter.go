package models

import "time"

// SavedFilter is a named filter configuration a user keeps for one of the
// record collections.
type SavedFilter struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	UserID       string    `json:"userId"`
	ResourceType string    `json:"resourceType"` // one of the Collection* constants
	FilterConfig string    `json:"filterConfig"` // JSON-encoded pipeline.FilterSpec
	IsDefault    bool      `json:"isDefault"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProgramTarget is one numeric program goal backing the dashboard's
// target-tracking cards.
type ProgramTarget struct {
	Metric string  `json:"metric"`
	Label  string  `json:"label"`
	Target float64 `json:"target"`
}
