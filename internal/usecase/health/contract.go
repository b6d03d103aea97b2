package health

import "context"

// CachePinger checks roster cache store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// RosterChecker reports whether the roster is usable.
type RosterChecker interface {
	RosterHealth() error
}
