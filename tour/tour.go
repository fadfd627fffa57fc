package tour

import (
	"errors"
	"fmt"
	"time"
)

// TrackPoint is one coordinate sample along a tour. Elevation and time
// are optional; a nil Ele or zero Time is omitted from output.
type TrackPoint struct {
	Lat  float64
	Lon  float64
	Ele  *float64
	Time time.Time
}

// Tour is a named, ordered route as modeled by Komoot. Built once per
// invocation from the fetched page data and not mutated afterwards.
type Tour struct {
	ID       string
	Name     string
	Sport    string
	Start    time.Time
	Distance float64 // meters
	Duration time.Duration
	Points   []TrackPoint
}

// ErrNoPoints indicates a tour whose coordinate sequence is empty.
var ErrNoPoints = errors.New("tour has no track points")

// Validate checks the tour invariants: a non-empty point sequence and
// coordinates within valid WGS84 ranges.
func (t *Tour) Validate() error {
	if len(t.Points) == 0 {
		return ErrNoPoints
	}
	for i, p := range t.Points {
		if p.Lat < -90 || p.Lat > 90 || p.Lon < -180 || p.Lon > 180 {
			return fmt.Errorf("point %d: coordinates out of range lat=%v lon=%v", i, p.Lat, p.Lon)
		}
	}
	return nil
}
