// Package check provides fluent, chainable checks that fail with a single,
// deterministic diagnostic.
//
// A chain starts from That, ThatDynamic or ThatCode, optionally negates the
// next predicate with Not and joins predicates with And:
//
//	err := check.That(2.0).IsStrictlyPositive().And().IsLessThan(10).Err()
//
// Every failure is a *FailureError whose message is the full diagnostic:
//
//	<custom message or empty line>
//	The checked value is not strictly positive (i.e. greater than zero).
//	The checked value:
//		[0]
//
// The first failure of a chain is kept and later predicates are skipped. A
// predicate that cannot evaluate its subject (a sign check on a string, a NaN)
// yields an error wrapping ErrUnsupportedSubject instead of a failure.
//
// A Checker built with New carries the context, logger, formatting and metric
// configuration; the package-level functions use an invariant default Checker
// with no logger.
package check
