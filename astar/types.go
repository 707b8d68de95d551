// Package astar defines the traversability capability, search result and
// functional options for the A* search.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for invalid search configuration.
var (
	// ErrBadMaxExpansions indicates that MaxExpansions was set to zero or a
	// negative value, which would forbid expanding even the start cell.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be positive")
)

// Traversable is the capability a cell type must expose to be searched.
// Cells reporting false block movement.
type Traversable interface {
	Traversable() bool
}

// Result is the outcome of a single search.
//
// Path     – coordinates from start to end inclusive; nil when !Found.
// Found    – whether end was reached.
// Cost     – accumulated Manhattan step cost of Path (0 when !Found).
// Expanded – number of coordinates expanded (moved to the visited set).
// Pushed   – number of entries ever pushed onto the frontier.
// PeakFrontier – largest frontier size observed.
type Result struct {
	Path         []grid.Coord
	Found        bool
	Cost         int
	Expanded     int
	Pushed       int
	PeakFrontier int
}

// Options configures a search.
//
// MaxExpansions – stop and report "no path" once this many coordinates have
// been expanded. Default is math.MaxInt (no budget).
type Options struct {
	MaxExpansions int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMaxExpansions caps the number of expanded coordinates.
// Must pass a positive value; zero or negative panics with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns the defaults: no expansion budget.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: math.MaxInt,
	}
}
