package bag

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalogue = errors.New("catalogue is empty")
	ErrDuplicateEntry = errors.New("catalogue contains a duplicate entry")
)

// Attribute names the piece property a bag draws.
type Attribute string

const (
	AttributeShape Attribute = "shape"
	AttributeColor Attribute = "color"
)

// ConfigError reports a catalogue that cannot back a bag. It is only ever
// returned by constructors.
type ConfigError struct {
	Attribute Attribute
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("bag config: %v", e.Err)
	}
	return fmt.Sprintf("bag config: %s %v", e.Attribute, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
