package domain

// Circuit is a single assignable test slot under a Stand.
//
// UserID is a weak reference: deleting the referenced user resets the
// circuit to unoccupied. TaskNumber is a free-text label independent of
// occupancy; it is cleared when the owning stand is deactivated.
type Circuit struct {
	ID         string  `json:"id"`
	StandID    string  `json:"standId"`
	Name       string  `json:"name"`
	IsOccupied bool    `json:"isOccupied"`
	IsActive   bool    `json:"isActive"`
	UserID     *string `json:"userId"`
	TaskNumber *string `json:"taskNumber"`
}
