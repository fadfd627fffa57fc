// Package tour holds the in-memory tour model shared by the fetcher and
// the GPX writer.
package tour
