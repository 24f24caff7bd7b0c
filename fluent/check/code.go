package check

import (
	"errors"
	"reflect"

	"github.com/LerianStudio/lib-fluent/fluent/message"
)

// Outcome is what a piece of checked code raised.
type Outcome struct {
	// Err is the returned error, or a *PanicError when the code panicked.
	Err      error
	Panicked bool
}

// Raised reports whether the code returned an error or panicked.
func (o Outcome) Raised() bool {
	return o.Err != nil
}

func capture(fn func() error) (outcome Outcome) {
	if fn == nil {
		return Outcome{}
	}

	defer func() {
		if r := recover(); r != nil {
			outcome = Outcome{Err: &PanicError{Value: r}, Panicked: true}
		}
	}()

	return Outcome{Err: fn()}
}

// kindName renders a type name without quotes in diagnostics.
type kindName string

func (k kindName) String() string { return string(k) }

var (
	mustRaise = message.Template{
		Positive: "The checked code did not raise an error, whereas it must.",
	}
	differentKind = message.Template{
		Positive: "The checked code raised an error of a different kind.",
		Negated:  "The checked code raised an error of the forbidden kind, whereas it must not.",
	}
	unexpectedMessage = message.Template{
		Positive: "The message of the checked error is not as expected.",
		Negated:  "The message of the checked error is the forbidden one, whereas it must not.",
	}
	mustNotRaise = message.Template{
		Positive: "The checked code raised an error, whereas it must not.",
	}
)

// CodeCheck checks what a piece of code raised. Like Check it is a value
// that keeps the first failure and skips every later assertion.
type CodeCheck struct {
	checker Checker
	outcome Outcome
	negated bool
	err     error
}

// Outcome returns what the code raised.
func (c CodeCheck) Outcome() Outcome {
	return c.outcome
}

// Err returns the first failure of the chain, or nil.
func (c CodeCheck) Err() error {
	return c.err
}

// Must panics with the chain's error, if any.
func (c CodeCheck) Must() {
	if c.err != nil {
		panic(c.err)
	}
}

// Not negates the next assertion. Calling it twice cancels out.
//
// Negated, Throws and ThrowsType pass unless the code raised a matching error,
// ThrowsAny and DoesNotThrow swap meanings, and WithMessage requires an error
// whose message differs from the text.
func (c CodeCheck) Not() CodeCheck {
	c.negated = !c.negated
	return c
}

// And continues the chain on the same outcome.
func (c CodeCheck) And() CodeCheck {
	c.negated = false
	return c
}

// Throws passes when the raised error matches target according to errors.Is.
func (c CodeCheck) Throws(target error) CodeCheck {
	if c.err != nil {
		return c.And()
	}

	switch {
	case c.negated:
		if c.outcome.Raised() && errors.Is(c.outcome.Err, target) {
			return c.failWith("Throws", differentKind, message.NounError, c.outcome.Err, target)
		}
	case !c.outcome.Raised():
		return c.failWith("Throws", mustRaise, message.NounError, nil, target)
	case !errors.Is(c.outcome.Err, target):
		return c.failWith("Throws", differentKind, message.NounError, c.outcome.Err, target)
	}

	return c.And()
}

// ThrowsAny passes when the code raised anything.
func (c CodeCheck) ThrowsAny() CodeCheck {
	if c.err != nil {
		return c.And()
	}

	return c.raised("ThrowsAny", true)
}

// DoesNotThrow passes when the code neither returned an error nor panicked.
func (c CodeCheck) DoesNotThrow() CodeCheck {
	if c.err != nil {
		return c.And()
	}

	return c.raised("DoesNotThrow", false)
}

// ThrowsType passes when the raised error, or one it wraps, is an E.
func ThrowsType[E error](c CodeCheck) CodeCheck {
	if c.err != nil {
		return c.And()
	}

	want := kindName(reflect.TypeFor[E]().String())

	var target E

	switch {
	case c.negated:
		if c.outcome.Raised() && errors.As(c.outcome.Err, &target) {
			return c.failWith("ThrowsType", differentKind, message.NounError,
				kindName(reflect.TypeOf(c.outcome.Err).String()), want)
		}
	case !c.outcome.Raised():
		return c.failWith("ThrowsType", mustRaise, message.NounError, nil, want)
	case !errors.As(c.outcome.Err, &target):
		return c.failWith("ThrowsType", differentKind, message.NounError,
			kindName(reflect.TypeOf(c.outcome.Err).String()), want)
	}

	return c.And()
}

// WithMessage passes when the raised error's message is exactly text.
func (c CodeCheck) WithMessage(text string) CodeCheck {
	if c.err != nil {
		return c.And()
	}

	if !c.outcome.Raised() {
		c.negated = false
		return c.failUnary("WithMessage", mustRaise, nil)
	}

	if got := c.outcome.Err.Error(); (got == text) == c.negated {
		return c.failWith("WithMessage", unexpectedMessage, message.NounErrorMessage, got, text)
	}

	return c.And()
}

// raised resolves ThrowsAny (want true) and DoesNotThrow (want false) against
// the pending negation.
func (c CodeCheck) raised(name string, want bool) CodeCheck {
	if c.negated {
		want = !want
	}

	c.negated = false

	switch {
	case want && !c.outcome.Raised():
		return c.failUnary(name, mustRaise, nil)
	case !want && c.outcome.Raised():
		return c.failUnary(name, mustNotRaise, c.outcome.Err)
	}

	return c
}

func (c CodeCheck) failUnary(name string, tpl message.Template, checked any) CodeCheck {
	return c.report(name, tpl, message.NounError, checked, false, nil)
}

func (c CodeCheck) failWith(name string, tpl message.Template, noun string, checked, expected any) CodeCheck {
	return c.report(name, tpl, noun, checked, true, expected)
}

func (c CodeCheck) report(name string, tpl message.Template, noun string, checked any, hasExpected bool, expected any) CodeCheck {
	qualifier := ""
	if c.negated {
		qualifier = message.QualifierDifferentFrom
	}

	c.err = c.checker.fail(name, c.negated, message.Message{
		Custom:      c.checker.customMessage,
		Description: tpl.Describe(noun, c.negated),
		Noun:        noun,
		Checked:     checked,
		HasExpected: hasExpected,
		Expected:    expected,
		Qualifier:   qualifier,
	})
	c.negated = false

	return c
}
