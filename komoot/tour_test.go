package komoot

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mfkd/komootgpx/tour"
)

func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64     { return &v }

func testPayload(items []RawCoordinate) *TourPayload {
	var p TourPayload
	raw := RawTour{
		ID:       json.Number("121385"),
		Name:     "Morning Hike",
		Sport:    "hike",
		Date:     "2022-06-13T09:02:33.829+02:00",
		Distance: 1234.5,
		Duration: 3600,
	}
	raw.Embedded.Coordinates.Items = items
	p.Page.Embedded.Tour = raw
	return &p
}

func TestTourPayload_Tour(t *testing.T) {
	items := []RawCoordinate{
		{Lat: 52.520008, Lng: 13.404954, Alt: floatPtr(34.2), T: int64Ptr(0)},
		{Lat: 52.520103, Lng: 13.405102, Alt: floatPtr(34.9), T: int64Ptr(5000)},
		{Lat: 52.520221, Lng: 13.405333, Alt: floatPtr(35.1), T: int64Ptr(11000)},
	}

	tr, err := testPayload(items).Tour()
	if err != nil {
		t.Fatalf("Tour() failed: %v", err)
	}

	if tr.ID != "121385" {
		t.Errorf("ID = %q, want %q", tr.ID, "121385")
	}
	if tr.Name != "Morning Hike" || tr.Sport != "hike" {
		t.Errorf("name/sport = %q/%q", tr.Name, tr.Sport)
	}
	if tr.Duration != time.Hour {
		t.Errorf("duration = %v, want 1h", tr.Duration)
	}
	if len(tr.Points) != len(items) {
		t.Fatalf("got %d points, want %d", len(tr.Points), len(items))
	}
	// Order must match the payload exactly.
	for i, it := range items {
		if tr.Points[i].Lat != it.Lat || tr.Points[i].Lon != it.Lng {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, tr.Points[i].Lat, tr.Points[i].Lon, it.Lat, it.Lng)
		}
	}

	start, ok := tour.ParseDate("2022-06-13T09:02:33.829+02:00")
	if !ok {
		t.Fatal("ParseDate failed on fixture date")
	}
	if !tr.Start.Equal(start) {
		t.Errorf("start = %v, want %v", tr.Start, start)
	}
	if !tr.Points[1].Time.Equal(start.Add(5 * time.Second)) {
		t.Errorf("point 1 time = %v, want start+5s", tr.Points[1].Time)
	}
}

func TestTourPayload_Tour_NoCoordinates(t *testing.T) {
	_, err := testPayload(nil).Tour()

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if !errors.Is(err, tour.ErrNoPoints) {
		t.Errorf("error should wrap tour.ErrNoPoints, got %v", err)
	}
}

func TestTourPayload_Tour_InvalidCoordinates(t *testing.T) {
	items := []RawCoordinate{{Lat: 91.5, Lng: 13.4}}

	_, err := testPayload(items).Tour()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want *ParseError", err)
	}
}

func TestTourPayload_Tour_NoTimestampsWithoutDate(t *testing.T) {
	p := testPayload([]RawCoordinate{{Lat: 52.5, Lng: 13.4, T: int64Ptr(5000)}})
	p.Page.Embedded.Tour.Date = ""

	tr, err := p.Tour()
	if err != nil {
		t.Fatalf("Tour() failed: %v", err)
	}
	if !tr.Points[0].Time.IsZero() {
		t.Errorf("point time = %v, want zero without a tour date", tr.Points[0].Time)
	}
}
