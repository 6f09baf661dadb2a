package models

// Location is an immutable directory record. Locations are never created or
// mutated by the booking core; they come from the static directory only.
type Location struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	State    string `json:"state"`
	District string `json:"district"`
	Code     string `json:"code"`
}
