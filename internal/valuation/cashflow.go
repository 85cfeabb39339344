package valuation

import (
	"errors"
	"fmt"
	"time"

	"ppa-valuation/internal/model"
)

// ErrLengthMismatch means the generation and price inputs to a cash-flow
// build disagree in length. Checked up front, before any multiplication.
var ErrLengthMismatch = errors.New("generation and price series are not of equal length")

// CashFlow combines a generation series and a price series into the hourly
// cash-flow series gen[i] * price[i], re-indexed onto the tenor. The two
// inputs are aligned positionally with the tenor, not matched by timestamp.
func CashFlow(gen, price model.Series, tenor []time.Time) (model.Series, error) {
	if gen.Len() != price.Len() {
		return model.Series{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, gen.Len(), price.Len())
	}
	if gen.Len() != len(tenor) {
		return model.Series{}, fmt.Errorf("%w: %d values for %d tenor hours", ErrLengthMismatch, gen.Len(), len(tenor))
	}
	values := make([]float64, gen.Len())
	for i := range values {
		values[i] = gen.Values[i] * price.Values[i]
	}
	return model.Series{Times: tenor, Values: values}, nil
}
