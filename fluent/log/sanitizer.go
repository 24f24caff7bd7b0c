package log

import "strings"

// controlCharReplacer escapes control characters that can be used for log injection (CWE-117).
// Diagnostic messages are multi-line by construction, so they must be flattened before they
// reach a line-oriented sink.
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\x00", `\x00`,
)

// Sanitize escapes newlines, carriage returns, tabs and NUL bytes in s.
func Sanitize(s string) string {
	return controlCharReplacer.Replace(s)
}
