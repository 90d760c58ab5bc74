package dao

// Initial dataset written by Bootstrap when the store is empty. Stands and
// circuits are a fixed set; users can be added and removed at runtime, so
// the three below are just a starting roster.

func seedStands() []Stand {
	return []Stand{
		{ID: "meetups", Name: "Meetups", IsActive: true},
		{ID: "career", Name: "Career", IsActive: true},
		{ID: "edu", Name: "Edu", IsActive: true},
		{ID: "sprint-offer", Name: "Sprint Offer", IsActive: true},
	}
}

func seedCircuits() []Circuit {
	var circuits []Circuit
	for _, stand := range seedStands() {
		circuits = append(circuits,
			Circuit{ID: stand.ID + "-circuit-1", StandID: stand.ID, Name: "Test 1", IsActive: true},
			Circuit{ID: stand.ID + "-circuit-2", StandID: stand.ID, Name: "Test 2", IsActive: true},
		)
	}
	return circuits
}

func seedUsers() []User {
	return []User{
		{ID: "anton", Name: "Антон"},
		{ID: "aliya", Name: "Алия"},
		{ID: "natasha", Name: "Наташа"},
	}
}
