package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Location is one endpoint of the fixed trade network. Coordinates are
// abstract sector positions, not geography.
type Location struct {
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Lawless bool    `json:"lawless"` // Lawless endpoints raise route risk and tolls.
}

// Distance returns the straight-line distance between two locations.
func Distance(a, b Location) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Hypot(dx, dy)
}

// TradeRoute connects an unordered pair of locations. Routes are generated
// once for every pair at startup and never regenerated; only traffic and
// interdiction counters change afterwards.
type TradeRoute struct {
	ID            uuid.UUID `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	Distance      float64   `json:"distance"`
	Traffic       float64   `json:"traffic"`       // Current traffic level; random-walks over time.
	Risk          float64   `json:"risk"`          // Interdiction risk in [0,1], fixed at creation.
	Tolls         float64   `json:"tolls"`         // Deterministic toll cost, fixed at creation.
	Interdictions int       `json:"interdictions"` // Count of logged interdiction events.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
