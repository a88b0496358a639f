package splitter

import (
	"fmt"

	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// Order selects how the Simple strategy arranges samples before cutting.
type Order int

const (
	// OrderRandom shuffles the sample index order with a fixed seed.
	OrderRandom Order = iota

	// OrderStratified stable-sorts the train set by label value, so each
	// partner receives class-contiguous blocks once cut.
	OrderStratified
)

// String returns the string representation of the order.
func (o Order) String() string {
	switch o {
	case OrderRandom:
		return "random"
	case OrderStratified:
		return "stratified"
	default:
		return "unknown"
	}
}

// ParseOrder converts a samples split option string into an Order.
//
// Parameters:
//   - s: "random" or "stratified"
//
// Returns:
//   - Order: Parsed order
//   - error: Wrapped ErrUnknownSplitOption for any other value
func ParseOrder(s string) (Order, error) {
	switch s {
	case "random":
		return OrderRandom, nil
	case "stratified":
		return OrderStratified, nil
	default:
		return 0, fmt.Errorf("samples split option %q: %w", s, types.ErrUnknownSplitOption)
	}
}
