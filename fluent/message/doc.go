// Package message assembles the multi-line diagnostic attached to a failed check.
//
// A diagnostic is, in order: the custom message line (empty when none), the
// description line, the checked block and, for predicates that compare against
// something, the expected block:
//
//	cool
//	The checked value is not equal to the expected one.
//	The checked value:
//		["test"]
//	The expected value:
//		["tes"]
package message
