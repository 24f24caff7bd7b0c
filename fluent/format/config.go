package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Config is the explicit formatting configuration handed to a Formatter.
//
// The zero value is the invariant configuration.
type Config struct {
	// Locale opts numeric rendering into a culture. language.Und (the zero
	// value) keeps the invariant representation.
	Locale language.Tag
}

// Invariant reports whether c renders numbers without any culture.
func (c Config) Invariant() bool {
	return c.Locale == language.Und
}

func (c Config) printer() *message.Printer {
	if c.Invariant() {
		return nil
	}

	return message.NewPrinter(c.Locale)
}
