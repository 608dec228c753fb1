package bar

import "fmt"

// ConfigurationError is returned by New when the format or options cannot
// describe a valid bar. No Bar is created in that case.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid progress bar %s: %s", e.Field, e.Reason)
}
