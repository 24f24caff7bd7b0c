// Package constant provides shared constant values used across the library.
//
// Keep this package free of runtime behavior apart from label sanitising.
// It is used by the check engine and its telemetry helpers to avoid duplicated literals.
package constant
