package analyzer

import (
	"errors"
	"fmt"

	awscostexplorer "github.com/elC0mpa/aws-costpilot/service/aws/costexplorer"
)

// MixedCurrencyError reports records with different currency units inside
// one aggregation call. Summing across currencies is rejected rather than
// silently producing a meaningless total.
type MixedCurrencyError struct {
	Unit      string
	OtherUnit string
}

func (e *MixedCurrencyError) Error() string {
	return fmt.Sprintf("mixed currencies in one aggregation: %q and %q", e.Unit, e.OtherUnit)
}

// structural reports errors that indicate a genuine inability to answer
// and must propagate instead of degrading to an empty result
func structural(err error) bool {
	var malformed *awscostexplorer.MalformedResponseError
	if errors.As(err, &malformed) {
		return true
	}
	var mixed *MixedCurrencyError
	if errors.As(err, &mixed) {
		return true
	}
	return errors.Is(err, awscostexplorer.ErrUnsupportedDimension)
}
