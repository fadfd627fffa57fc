package gpx

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/mfkd/komootgpx/tour"
)

// WriteError reports a filesystem failure while writing the GPX file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// WriteFile serializes the tour and writes it to path.
func WriteFile(t *tour.Tour, path string) error {
	if err := os.WriteFile(path, Build(t), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// DefaultFilename derives an output filename from the tour: the
// sanitized tour name, falling back to the tour ID, then to "tour.gpx".
func DefaultFilename(t *tour.Tour) string {
	name := sanitizeFilename(t.Name)
	if name == "" {
		if t.ID != "" {
			return "komoot-tour-" + t.ID + ".gpx"
		}
		return "tour.gpx"
	}
	return name + ".gpx"
}

// sanitizeFilename keeps letters, digits and a few safe punctuation
// runes; everything else collapses to a single underscore.
func sanitizeFilename(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_.")
}
