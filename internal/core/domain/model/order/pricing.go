package order

import (
	"errors"
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
)

// Pricing holds the amounts of an order in minor currency units.
type Pricing struct {
	subtotal   int64
	commission int64
	total      int64
}

// NewPricing checks that every amount is non-negative and that the client
// supplied total matches subtotal + commission. A mismatch is a state
// conflict rather than malformed input, so it is reported as InvalidState.
func NewPricing(subtotal, commission, total int64) (Pricing, error) {
	if err := errors.Join(
		nonNegative("subtotal", subtotal),
		nonNegative("commission", commission),
		nonNegative("total", total),
	); err != nil {
		return Pricing{}, err
	}

	if subtotal+commission != total {
		return Pricing{}, errs.NewInvalidStateErrorWithCause("create order", "pricing",
			fmt.Errorf("total %d must equal subtotal %d + commission %d", total, subtotal, commission))
	}

	return Pricing{subtotal: subtotal, commission: commission, total: total}, nil
}

func nonNegative(name string, v int64) error {
	if v < 0 {
		return errs.NewValueIsOutOfRangeError(name, v, 0, int64(math.MaxInt64))
	}
	return nil
}

func (p Pricing) Subtotal() int64 {
	return p.subtotal
}

func (p Pricing) Commission() int64 {
	return p.commission
}

func (p Pricing) Total() int64 {
	return p.total
}
