package core

import "fmt"

const (
	// INVOKE is charged for every executed instruction.
	INVOKE uint64 = 1000
	// ACCOUNT_ACCESS is charged for every account referenced by the instruction.
	ACCOUNT_ACCESS uint64 = 150
	// LOAD is charged for every 8 bytes of account data passed to the program.
	LOAD uint64 = 5
	// UPDATE is charged for every 8 bytes of account data written back.
	UPDATE uint64 = 25
	// LOG is charged for every line logged by the program.
	LOG uint64 = 100

	// DefaultComputeLimit is the budget of a single transaction.
	DefaultComputeLimit uint64 = 200_000
)

// SizeUnits computes total cost for a value of the specific size.
// Units are charged for every 8 bytes, rounded up.
func SizeUnits(units uint64, size int) uint64 {
	quo := size / 8
	rem := size % 8
	rst := uint64(quo) * units
	if rem != 0 {
		rst += units
	}
	return rst
}

// NewComputeMeter returns meter with the limit.
func NewComputeMeter(limit uint64) *ComputeMeter {
	return &ComputeMeter{limit: limit}
}

// ComputeMeter tracks compute units consumed by the transaction.
type ComputeMeter struct {
	limit, used uint64
}

// Consume units. If the limit is exceeded meter is exhausted and ErrComputeBudgetExceeded is returned.
func (m *ComputeMeter) Consume(units uint64) error {
	if units > m.limit-m.used {
		m.used = m.limit
		return fmt.Errorf("%w: limit %d", ErrComputeBudgetExceeded, m.limit)
	}
	m.used += units
	return nil
}

// Used returns consumed units.
func (m *ComputeMeter) Used() uint64 {
	return m.used
}

// Limit returns the budget.
func (m *ComputeMeter) Limit() uint64 {
	return m.limit
}
