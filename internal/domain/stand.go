package domain

// Stand is a top-level grouping of test circuits with an activation gate.
// Stands are created by the seed data and are never deleted at runtime.
type Stand struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}
