// Package routegen fabricates transport inventory per search. There is no
// real reservation system behind it: schedules are fixed tables, prices and
// seat counts are drawn at random within per-mode bounds.
package routegen

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"travelapp/internal/domain/models"
	"travelapp/internal/locations"
)

type schedule struct {
	dept, arr, duration string
}

var (
	flightTimes = []schedule{
		{"06:00", "08:30", "2h 30m"},
		{"09:15", "11:45", "2h 30m"},
		{"14:20", "16:50", "2h 30m"},
		{"18:45", "21:15", "2h 30m"},
	}
	trainTimes = []schedule{
		{"05:30", "14:45", "9h 15m"},
		{"08:15", "17:30", "9h 15m"},
		{"16:20", "01:35", "9h 15m"},
		{"22:00", "07:15", "9h 15m"},
	}
	busTimes = []schedule{
		{"06:00", "18:00", "12h 00m"},
		{"10:30", "22:30", "12h 00m"},
		{"15:45", "03:45", "12h 00m"},
		{"21:00", "09:00", "12h 00m"},
	}

	flightProviders = []string{"IndiGo", "SpiceJet", "Air India", "Vistara"}
	trainProviders  = []string{"Rajdhani Express", "Shatabdi Express", "Duronto Express", "Gatimaan Express"}
	busProviders    = []string{"Volvo", "RedBus", "Travels Corp", "SRS Travels"}

	trainClasses = []string{"3A", "2A", "1A", "CC"}
	busClasses   = []string{"Sleeper", "Semi-Sleeper", "AC", "Volvo"}
)

// Generator produces route inventory for a location pair. It has no side
// effects beyond consuming randomness; the mutex makes it safe to share
// across request handlers.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded fixes the random stream, for deterministic tests.
func NewSeeded(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns the fabricated routes between two directory ids, in a
// fixed order: four flights, four trains, four buses. Unknown ids degrade to
// an empty result rather than an error.
func (g *Generator) Generate(fromID, toID string) []models.Route {
	from, ok := locations.ByID(fromID)
	if !ok {
		return []models.Route{}
	}
	to, ok := locations.ByID(toID)
	if !ok {
		return []models.Route{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	routes := make([]models.Route, 0, 12)

	for i, t := range flightTimes {
		routes = append(routes, models.Route{
			ID:             fmt.Sprintf("flight-%s-%s-%d", fromID, toID, i),
			From:           from,
			To:             to,
			Mode:           models.ModeFlight,
			Provider:       flightProviders[i%len(flightProviders)],
			DepartureTime:  t.dept,
			ArrivalTime:    t.arr,
			Duration:       t.duration,
			Price:          g.price(3500, 12000),
			SeatsAvailable: g.seats(),
			Amenities:      []string{"Baggage", "Meal", "WiFi"},
			Class:          "Economy",
		})
	}

	for i, t := range trainTimes {
		routes = append(routes, models.Route{
			ID:             fmt.Sprintf("train-%s-%s-%d", fromID, toID, i),
			From:           from,
			To:             to,
			Mode:           models.ModeTrain,
			Provider:       trainProviders[i%len(trainProviders)],
			DepartureTime:  t.dept,
			ArrivalTime:    t.arr,
			Duration:       t.duration,
			Price:          g.price(800, 3500),
			SeatsAvailable: g.seats(),
			Amenities:      []string{"AC", "Meals", "Charging Point"},
			Class:          trainClasses[i%len(trainClasses)],
		})
	}

	for i, t := range busTimes {
		routes = append(routes, models.Route{
			ID:             fmt.Sprintf("bus-%s-%s-%d", fromID, toID, i),
			From:           from,
			To:             to,
			Mode:           models.ModeBus,
			Provider:       busProviders[i%len(busProviders)],
			DepartureTime:  t.dept,
			ArrivalTime:    t.arr,
			Duration:       t.duration,
			Price:          g.price(500, 2500),
			SeatsAvailable: g.seats(),
			Amenities:      []string{"AC", "WiFi", "Charging Point"},
			Class:          busClasses[i%len(busClasses)],
		})
	}

	return routes
}

// seats is uniform in [10, 59].
func (g *Generator) seats() int {
	return g.rng.Intn(50) + 10
}

// price is uniform in [min, max].
func (g *Generator) price(min, max int64) int64 {
	return g.rng.Int63n(max-min+1) + min
}
