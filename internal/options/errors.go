package options

import "fmt"

// ConfigError is a fatal option combination, reported before generation.
type ConfigError struct {
	Option string
	Reason string
	Err    error // optional cause
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid option %s: %s: %v", e.Option, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid option %s: %s", e.Option, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
