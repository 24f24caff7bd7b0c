package check

import (
	"context"

	"github.com/LerianStudio/lib-fluent/fluent/dynamic"
	"github.com/LerianStudio/lib-fluent/fluent/format"
	"github.com/LerianStudio/lib-fluent/fluent/log"
	"github.com/LerianStudio/lib-fluent/fluent/message"
)

// Checker is the environment checks run in: custom message, formatter,
// logger, context and failure counter. It is a value; every With* method
// returns a modified copy.
type Checker struct {
	ctx           context.Context
	logger        log.Logger
	formatter     format.Formatter
	failures      *failureCounter
	customMessage string
}

// New creates a Checker. ctx is used to find the span failures are recorded
// on; logger receives one debug entry per failure and defaults to log.NewNop.
// Checkers must be built with New.
//
//nolint:contextcheck // Intentionally creates a fallback context when nil is passed
func New(ctx context.Context, logger log.Logger, opts ...Option) Checker {
	if ctx == nil {
		ctx = context.Background()
	}

	if logger == nil {
		logger = log.NewNop()
	}

	c := Checker{
		ctx:       ctx,
		logger:    logger,
		formatter: format.Invariant(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// WithCustomMessage returns a Checker whose failures are prefixed with text.
func (c Checker) WithCustomMessage(text string) Checker {
	c.customMessage = text
	return c
}

// That wraps subject. Any value, nil included, is accepted.
func (c Checker) That(subject any) Check {
	return Check{checker: c, subject: subject, noun: message.NounValue}
}

// ThatDynamic resolves path on subject (see package dynamic) and wraps the
// result. Members that cannot be reached become an absent value reported as
// null.
func (c Checker) ThatDynamic(subject any, path ...string) Check {
	return Check{
		checker: c,
		subject: dynamic.Resolve(subject, path...).Interface(),
		noun:    message.NounDynamic,
	}
}

// ThatCode runs fn once and wraps what it raised: its returned error or a
// recovered panic.
func (c Checker) ThatCode(fn func() error) CodeCheck {
	return CodeCheck{checker: c, outcome: capture(fn)}
}

var defaultChecker = New(context.Background(), nil)

// That wraps subject with the default Checker.
func That(subject any) Check {
	return defaultChecker.That(subject)
}

// ThatDynamic resolves path on subject with the default Checker.
func ThatDynamic(subject any, path ...string) Check {
	return defaultChecker.ThatDynamic(subject, path...)
}

// ThatCode runs fn with the default Checker.
func ThatCode(fn func() error) CodeCheck {
	return defaultChecker.ThatCode(fn)
}

// WithCustomMessage returns the default Checker with a failure prefix.
func WithCustomMessage(text string) Checker {
	return defaultChecker.WithCustomMessage(text)
}
