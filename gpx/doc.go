// Package gpx serializes tours to GPX 1.1 XML.
//
// Serialization is done manually for precise control over element order
// and numeric formatting.
package gpx
