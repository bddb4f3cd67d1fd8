package awscostexplorer

import (
	"errors"
	"fmt"

	"github.com/elC0mpa/aws-costpilot/model"
)

// ErrUnsupportedDimension is returned when a caller asks for a dimension
// outside the supported whitelist
var ErrUnsupportedDimension = errors.New("unsupported grouping dimension")

// MalformedResponseError reports a provider response missing expected
// structure. Fragment carries the offending piece for diagnosis.
type MalformedResponseError struct {
	Reason   string
	Fragment string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed cost explorer response: %s (fragment: %s)", e.Reason, e.Fragment)
}

func unsupportedDimension(d model.Dimension) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedDimension, string(d))
}
