// Package komoot fetches tour pages from komoot and extracts the tour
// data embedded in them.
//
// Komoot does not expose the tour as a plain JSON endpoint. The tour
// page inlines its props as the string argument of a kmtBoot.setProps
// call, HTML-entity-escaped and with quotes/backslashes doubled. The
// extraction pipeline is:
//   - FetchTourPage: one HTTP GET of the page HTML
//   - ExtractTourData: locate the props in a script element, unescape,
//     sanitize, decode into TourPayload
//   - TourPayload.Tour: map onto the tour model and validate
//
// Failures are reported as *FetchError (network, non-2xx) or
// *ParseError (unexpected page or payload shape, invariant violations).
package komoot
