package models

// SlotCounter tracks consumption of a single (date, time) slot. Capacity is
// fixed when the grid is built; Reserved and Available move together under
// the scheduler's lock so that Available == Capacity - Reserved always holds.
type SlotCounter struct {
	Capacity  int `json:"capacity"`
	Reserved  int `json:"reserved"`
	Available int `json:"available"`
}

// SlotAvailability is the read-only view of a SlotCounter returned by
// availability queries.
type SlotAvailability struct {
	Reserved  int `json:"reserved"`
	Capacity  int `json:"capacity"`
	Available int `json:"available"`
}
