package gpx

import (
	"strconv"
	"strings"

	"github.com/mfkd/komootgpx/tour"
)

const gpxNamespace = "http://www.topografix.com/GPX/1/1"

// Creator attribute written into the gpx root element.
const Creator = "komootgpx"

// Build serializes a tour to a GPX 1.1 document: one track with one
// track segment whose points match the tour's point sequence 1:1, in
// order. The caller is expected to have validated the tour.
func Build(t *tour.Tour) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n")
	b.WriteString(`<gpx xmlns="` + gpxNamespace + `" version="1.1" creator="` + Creator + `">`)

	b.WriteString("<metadata>")
	if t.Name != "" {
		b.WriteString("<name>")
		b.WriteString(xmlEscape(t.Name))
		b.WriteString("</name>")
	}
	if !t.Start.IsZero() {
		b.WriteString("<time>")
		b.WriteString(tour.Iso8601UTC(t.Start))
		b.WriteString("</time>")
	}
	b.WriteString("</metadata>")

	b.WriteString("<trk>")
	if t.Name != "" {
		b.WriteString("<name>")
		b.WriteString(xmlEscape(t.Name))
		b.WriteString("</name>")
	}
	if t.Sport != "" {
		b.WriteString("<type>")
		b.WriteString(xmlEscape(t.Sport))
		b.WriteString("</type>")
	}
	b.WriteString("<trkseg>")
	for _, p := range t.Points {
		writeTrackPointXML(&b, p)
	}
	b.WriteString("</trkseg>")
	b.WriteString("</trk>")

	b.WriteString("</gpx>")
	b.WriteString("\n")
	return []byte(b.String())
}

func writeTrackPointXML(b *strings.Builder, p tour.TrackPoint) {
	b.WriteString(`<trkpt lat="`)
	b.WriteString(formatCoord(p.Lat))
	b.WriteString(`" lon="`)
	b.WriteString(formatCoord(p.Lon))
	b.WriteString(`">`)
	if p.Ele != nil {
		b.WriteString("<ele>")
		b.WriteString(formatCoord(*p.Ele))
		b.WriteString("</ele>")
	}
	if !p.Time.IsZero() {
		b.WriteString("<time>")
		b.WriteString(tour.Iso8601UTC(p.Time))
		b.WriteString("</time>")
	}
	b.WriteString("</trkpt>")
}

// formatCoord emits the shortest decimal form that round-trips the
// float64 exactly, so source coordinate precision is never lost.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
