package constant

import "unicode/utf8"

// TelemetrySDKName identifies this library in OTEL instrumentation scopes.
const TelemetrySDKName = "lib-fluent/check"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
const MaxMetricLabelLength = 64

// AttrPrefixCheck is the prefix for check failure event attributes.
const AttrPrefixCheck = "check."

// Span attribute keys recorded on check failures.
const (
	AttrCheckPredicate = AttrPrefixCheck + "predicate"
	AttrCheckNoun      = AttrPrefixCheck + "noun"
	AttrCheckNegated   = AttrPrefixCheck + "negated"
	AttrCheckMessage   = AttrPrefixCheck + "message"
)

// Metric label keys.
const (
	LabelPredicate = "predicate"
	LabelNoun      = "noun"
)

// MetricCheckFailedTotal is the counter metric for failed checks.
const MetricCheckFailedTotal = "check_failed_total"

// EventCheckFailed is the span event name for check failures.
const EventCheckFailed = "check.failed"

// SanitizeMetricLabel truncates a label value to at most MaxMetricLabelLength
// bytes without splitting a UTF-8 sequence.
func SanitizeMetricLabel(value string) string {
	if len(value) <= MaxMetricLabelLength {
		return value
	}

	cut := MaxMetricLabelLength
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}

	return value[:cut]
}
