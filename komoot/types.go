package komoot

import "encoding/json"

// TourPayload mirrors the slice of the page props this tool consumes.
// The tour lives at page._embedded.tour, its coordinates one _embedded
// level deeper.
type TourPayload struct {
	Page struct {
		Embedded struct {
			Tour RawTour `json:"tour"`
		} `json:"_embedded"`
	} `json:"page"`
}

// RawTour is the tour object as embedded in the page.
type RawTour struct {
	ID       json.Number `json:"id"`
	Name     string      `json:"name"`
	Sport    string      `json:"sport"`
	Date     string      `json:"date"`
	Distance float64     `json:"distance"`
	Duration float64     `json:"duration"` // seconds
	Embedded struct {
		Coordinates struct {
			Items []RawCoordinate `json:"items"`
		} `json:"coordinates"`
	} `json:"_embedded"`
}

// RawCoordinate is one coordinate item. T is the offset from the tour
// start in milliseconds; Alt and T are absent on some tours.
type RawCoordinate struct {
	Lat float64  `json:"lat"`
	Lng float64  `json:"lng"`
	Alt *float64 `json:"alt"`
	T   *int64   `json:"t"`
}
