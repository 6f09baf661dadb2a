package models

// TravelMode is the transport type of a route.
type TravelMode string

const (
	ModeTrain  TravelMode = "train"
	ModeBus    TravelMode = "bus"
	ModeFlight TravelMode = "flight"
)

func (m TravelMode) Valid() bool {
	switch m {
	case ModeTrain, ModeBus, ModeFlight:
		return true
	}
	return false
}

// Route is one transport offering between two locations. Routes are value
// objects fabricated per search; they carry no reference back to the search
// and two searches for the same pair may produce different prices and seats.
type Route struct {
	ID             string     `json:"id"`
	From           Location   `json:"from"`
	To             Location   `json:"to"`
	Mode           TravelMode `json:"mode"`
	Provider       string     `json:"provider"`
	DepartureTime  string     `json:"departureTime"`
	ArrivalTime    string     `json:"arrivalTime"`
	Duration       string     `json:"duration"`
	Price          int64      `json:"price"`
	SeatsAvailable int        `json:"seatsAvailable"`
	Amenities      []string   `json:"amenities"`
	Class          string     `json:"class,omitempty"`
}
