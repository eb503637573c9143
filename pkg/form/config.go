package form

import "time"

// Config holds engine defaults. It loads with config.Load.
type Config struct {
	// ValidateOnChange validates touched fields while the user types (default: false)
	ValidateOnChange bool `env:"FORM_VALIDATE_ON_CHANGE" envDefault:"false"`

	// ValidateOnBlur validates a field when it loses focus (default: true)
	ValidateOnBlur bool `env:"FORM_VALIDATE_ON_BLUR" envDefault:"true"`

	// Debounce delays change-driven validation; 0 validates synchronously
	Debounce time.Duration `env:"FORM_DEBOUNCE" envDefault:"300ms"`
}

// DefaultConfig returns the engine defaults
func DefaultConfig() Config {
	return Config{
		ValidateOnChange: false,
		ValidateOnBlur:   true,
		Debounce:         300 * time.Millisecond,
	}
}
