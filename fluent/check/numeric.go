package check

import (
	"github.com/LerianStudio/lib-fluent/fluent/format"
	"github.com/LerianStudio/lib-fluent/fluent/message"
	"github.com/shopspring/decimal"
)

var (
	strictlyPositive = message.Template{
		Positive: "The {subject} is not strictly positive (i.e. greater than zero).",
		Negated:  "The {subject} is strictly positive (i.e. greater than zero), whereas it must not.",
	}
	positiveOrZero = message.Template{
		Positive: "The {subject} is not positive or equal to zero.",
		Negated:  "The {subject} is positive or equal to zero, whereas it must not.",
	}
	strictlyNegative = message.Template{
		Positive: "The {subject} is not strictly negative.",
		Negated:  "The {subject} is strictly negative, whereas it must not.",
	}
	negativeOrZero = message.Template{
		Positive: "The {subject} is not negative or equal to zero.",
		Negated:  "The {subject} is negative or equal to zero, whereas it must not.",
	}
	zero = message.Template{
		Positive: "The {subject} is different from zero.",
		Negated:  "The {subject} is equal to zero, whereas it must not.",
	}
	greaterThan = message.Template{
		Positive: "The {subject} is less than or equal to the threshold.",
		Negated:  "The {subject} is greater than the threshold, whereas it must not.",
	}
	lessThan = message.Template{
		Positive: "The {subject} is greater than or equal to the threshold.",
		Negated:  "The {subject} is less than the threshold, whereas it must not.",
	}
)

func numeric(name string, v any) (decimal.Decimal, error) {
	d, ok := format.Decimal(v)
	if !ok {
		return decimal.Zero, unsupported(name, v, "not a finite number")
	}

	return d, nil
}

func signPredicate(name string, tpl message.Template, accept func(sign int) bool) predicate {
	return predicate{
		name:     name,
		template: tpl,
		test: func(subject any) (bool, error) {
			d, err := numeric(name, subject)
			if err != nil {
				return false, err
			}

			return accept(d.Sign()), nil
		},
	}
}

// IsStrictlyPositive passes when the subject is greater than zero.
func (c Check) IsStrictlyPositive() Check {
	return c.run(signPredicate("IsStrictlyPositive", strictlyPositive, func(s int) bool { return s > 0 }))
}

// IsPositive is IsStrictlyPositive; zero fails.
func (c Check) IsPositive() Check {
	return c.run(signPredicate("IsPositive", strictlyPositive, func(s int) bool { return s > 0 }))
}

// IsPositiveOrZero passes when the subject is greater than or equal to zero.
func (c Check) IsPositiveOrZero() Check {
	return c.run(signPredicate("IsPositiveOrZero", positiveOrZero, func(s int) bool { return s >= 0 }))
}

// IsStrictlyNegative passes when the subject is lower than zero.
func (c Check) IsStrictlyNegative() Check {
	return c.run(signPredicate("IsStrictlyNegative", strictlyNegative, func(s int) bool { return s < 0 }))
}

// IsNegative is IsStrictlyNegative; zero fails.
func (c Check) IsNegative() Check {
	return c.run(signPredicate("IsNegative", strictlyNegative, func(s int) bool { return s < 0 }))
}

// IsNegativeOrZero passes when the subject is lower than or equal to zero.
func (c Check) IsNegativeOrZero() Check {
	return c.run(signPredicate("IsNegativeOrZero", negativeOrZero, func(s int) bool { return s <= 0 }))
}

// IsZero passes when the subject equals zero.
func (c Check) IsZero() Check {
	return c.run(signPredicate("IsZero", zero, func(s int) bool { return s == 0 }))
}

// IsGreaterThan passes when the subject is strictly greater than threshold.
func (c Check) IsGreaterThan(threshold any) Check {
	return c.run(comparison("IsGreaterThan", greaterThan, threshold, "strictly greater than", "less than or equal to",
		func(cmp int) bool { return cmp > 0 }))
}

// IsLessThan passes when the subject is strictly lower than threshold.
func (c Check) IsLessThan(threshold any) Check {
	return c.run(comparison("IsLessThan", lessThan, threshold, "strictly less than", "greater than or equal to",
		func(cmp int) bool { return cmp < 0 }))
}

func comparison(name string, tpl message.Template, threshold any, qualifier, negatedQualifier string, accept func(cmp int) bool) predicate {
	return predicate{
		name:             name,
		template:         tpl,
		hasExpected:      true,
		expected:         threshold,
		qualifier:        qualifier,
		negatedQualifier: negatedQualifier,
		test: func(subject any) (bool, error) {
			d, err := numeric(name, subject)
			if err != nil {
				return false, err
			}

			limit, ok := format.Decimal(threshold)
			if !ok {
				return false, unsupported(name, threshold, "threshold is not a finite number")
			}

			return accept(d.Cmp(limit)), nil
		},
	}
}
