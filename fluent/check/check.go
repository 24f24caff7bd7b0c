package check

import (
	"github.com/LerianStudio/lib-fluent/fluent/message"
)

// Check is the state of one check chain: the subject, the pending negation and
// the first failure, if any. Transitions return new values and never mutate the
// receiver, so a Check stored in a variable can be reused safely.
//
// After a failure every later predicate of the chain is skipped without being
// evaluated, and Err keeps returning that first failure.
type Check struct {
	checker Checker
	subject any
	noun    string
	negated bool
	err     error
}

// predicate is one evaluation request handed to the negation resolver.
type predicate struct {
	name     string
	template message.Template
	// test reports whether the subject satisfies the predicate. An error means
	// the predicate cannot be evaluated at all.
	test func(subject any) (bool, error)

	hasExpected bool
	expected    any
	// qualifiers of the expected label, by polarity
	qualifier        string
	negatedQualifier string
}

// Not negates the next predicate. Calling it twice cancels out.
func (c Check) Not() Check {
	c.negated = !c.negated
	return c
}

// And continues the chain on the same subject.
func (c Check) And() Check {
	c.negated = false
	return c
}

// Err returns the first failure of the chain: a *FailureError when a predicate
// failed, an error wrapping ErrUnsupportedSubject when one could not be
// evaluated, nil otherwise.
func (c Check) Err() error {
	return c.err
}

// Must panics with the chain's error, if any.
func (c Check) Must() {
	if c.err != nil {
		panic(c.err)
	}
}

// Negated reports whether the next predicate will be negated.
func (c Check) Negated() bool {
	return c.negated
}

// Satisfies evaluates a caller-defined predicate. tpl provides the positive and
// negated descriptions, e.g.
//
//	check.That(order).Satisfies("IsPaid", message.Template{
//	    Positive: "The {subject} is not paid.",
//	    Negated:  "The {subject} is paid, whereas it must not.",
//	}, func(v any) bool { return v.(Order).Paid })
func (c Check) Satisfies(name string, tpl message.Template, test func(subject any) bool) Check {
	return c.run(predicate{
		name:     name,
		template: tpl,
		test: func(subject any) (bool, error) {
			return test(subject), nil
		},
	})
}

// run resolves the predicate against the current negation: the check passes
// when the raw result differs from the negation flag.
func (c Check) run(p predicate) Check {
	if c.err != nil {
		return c
	}

	next := c
	next.negated = false

	ok, err := p.test(c.subject)
	if err != nil {
		next.err = err
		return next
	}

	if ok != c.negated {
		return next
	}

	qualifier := p.qualifier
	if c.negated {
		qualifier = p.negatedQualifier
	}

	next.err = c.checker.fail(p.name, c.negated, message.Message{
		Custom:      c.checker.customMessage,
		Description: p.template.Describe(c.noun, c.negated),
		Noun:        c.noun,
		Checked:     c.subject,
		HasExpected: p.hasExpected,
		Expected:    p.expected,
		Qualifier:   qualifier,
	})

	return next
}
