// Package zap adapts go.uber.org/zap to the fluent/log Logger interface.
//
// Check failures carry multi-line diagnostics; this adapter escapes control
// characters in messages so a single failure stays a single log entry.
package zap
