// Package exports is loaded by quickdoc tests.
package exports

import "time"

// Timeout is how long to wait before giving up.
//
// Deprecated: Use Deadline instead.
var Timeout = 5 * time.Second

var Count int

// Greet returns a greeting for name.
//
// It never fails.
func Greet(name string) string { return "Hello, " + name }

// Grouped constants.
const (
	// Max is the upper bound.
	Max   = 10
	lower = 1
	Min   = lower
)

// Alias is a type alias.
type Alias = string

// Widget is a type.
type Widget struct{}

// Name is a method.
func (Widget) Name() string { return "widget" }

// Parse parses s.
//
// BUG(someone): Parse ignores its input.
func Parse(s string) error { return nil }

var hidden = Count
