package komoot

import (
	"time"

	"github.com/mfkd/komootgpx/tour"
)

// Tour maps the raw payload onto the tour model and checks the data
// invariants. A tour with no coordinates or out-of-range coordinates is
// a *ParseError, not a valid empty result.
func (p *TourPayload) Tour() (*tour.Tour, error) {
	raw := &p.Page.Embedded.Tour
	items := raw.Embedded.Coordinates.Items

	t := &tour.Tour{
		ID:       raw.ID.String(),
		Name:     raw.Name,
		Sport:    raw.Sport,
		Distance: raw.Distance,
		Duration: time.Duration(raw.Duration * float64(time.Second)),
	}
	if raw.Date != "" {
		if start, ok := tour.ParseDate(raw.Date); ok {
			t.Start = start
		}
	}

	t.Points = make([]tour.TrackPoint, 0, len(items))
	for _, it := range items {
		pt := tour.TrackPoint{Lat: it.Lat, Lon: it.Lng, Ele: it.Alt}
		if it.T != nil && !t.Start.IsZero() {
			pt.Time = t.Start.Add(time.Duration(*it.T) * time.Millisecond)
		}
		t.Points = append(t.Points, pt)
	}

	if err := t.Validate(); err != nil {
		return nil, &ParseError{Reason: "invalid tour data", Err: err}
	}
	return t, nil
}
