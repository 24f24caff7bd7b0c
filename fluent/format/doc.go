// Package format renders check subjects into the canonical text used inside
// failure diagnostics.
//
// Rendering never depends on process-wide state: numbers are written with an
// invariant representation (shopspring/decimal) unless a Config explicitly
// injects a locale, and no environment variable is ever consulted. Format is
// total; it never panics and never prints memory addresses.
//
//	f := format.Invariant()
//	f.Format(-50.0)   // -50
//	f.Format("test")  // "test"
//	f.Format(nil)     // null
package format
