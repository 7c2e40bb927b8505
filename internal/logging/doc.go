// Package logging provides the structured logging interface used by the
// long-division tool. Components depend on Logger; the application wires a
// zerolog console backend.
package logging
