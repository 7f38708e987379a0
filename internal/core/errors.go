package core

import "fmt"

// InvalidDescriptorError rejects a batch whose process descriptors are
// malformed: unparseable lines, negative arrival, non-positive burst,
// empty or duplicate pid. The batch is rejected before any simulation
// starts, so no partial results exist.
type InvalidDescriptorError struct {
	Reason string
}

func (e *InvalidDescriptorError) Error() string {
	return "invalid descriptor: " + e.Reason
}

// InvalidConfigurationError rejects a run whose configuration cannot be
// simulated: unknown policy key, non-positive quantum or level quantum.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

func Descriptorf(format string, args ...any) error {
	return &InvalidDescriptorError{Reason: fmt.Sprintf(format, args...)}
}

func Configurationf(format string, args ...any) error {
	return &InvalidConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
