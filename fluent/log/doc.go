// Package log defines the logging interface used by the check engine and typed logging fields.
//
// Adapters (such as the zap package) implement Logger so failed checks can be reported
// through whatever backend the test binary already uses. The engine never logs unless
// a Logger is supplied explicitly.
package log
