package domain

// User is a roster member who can be assigned to circuits.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
