package komoot

import (
	"encoding/json"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The tour data is not served as JSON: the page embeds it as the string
// argument of a kmtBoot.setProps call inside a script element.
const (
	propsStartMarker = `kmtBoot.setProps("`
	propsEndMarker   = `");`
)

// ExtractTourData locates the embedded props JSON in the tour page HTML
// and parses it. Failures yield a *ParseError.
func ExtractTourData(page string) (*TourPayload, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, &ParseError{Reason: "parse tour page HTML", Err: err}
	}

	var raw string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		start := strings.Index(text, propsStartMarker)
		if start < 0 {
			return true
		}
		rest := text[start+len(propsStartMarker):]
		end := strings.Index(rest, propsEndMarker)
		if end < 0 {
			return true
		}
		raw = rest[:end]
		return false
	})
	if raw == "" {
		return nil, &ParseError{Reason: "tour props not found in page"}
	}

	sanitized := sanitizeJSON(html.UnescapeString(raw))

	var payload TourPayload
	if err := json.Unmarshal([]byte(sanitized), &payload); err != nil {
		return nil, &ParseError{Reason: "decode embedded tour JSON", Err: err}
	}
	return &payload, nil
}

// sanitizeJSON undoes the escaping applied when the props JSON was
// inlined into the page: HTML entities plus doubled backslashes and
// escaped quotes.
func sanitizeJSON(s string) string {
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, `\\`, `\`)
	s = strings.ReplaceAll(s, `\"`, `"`)
	return s
}
