package toast

import "fmt"

// MaxContentLength is the hard upper bound on notification content length,
// enforced when a descriptor is built and again when it is admitted.
const MaxContentLength = 1000

// ContentTooLongError reports content exceeding MaxContentLength.
type ContentTooLongError struct {
	Limit  int
	Actual int
}

func (e *ContentTooLongError) Error() string {
	return fmt.Sprintf("toast: content is %d characters, limit is %d", e.Actual, e.Limit)
}

// InvalidConfigurationError reports an internally inconsistent descriptor,
// such as a non-positive percentage constraint or a negative margin.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "toast: invalid configuration: " + e.Reason
}

// CapacityError reports an add rejected under the DiscardNewest overflow
// policy because the anchor group is full.
type CapacityError struct {
	Anchor Anchor
	Max    int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("toast: %s already holds %d notifications", e.Anchor, e.Max)
}
