package units

import "github.com/zeebo/errs"

// Error classes raised by the unit-math core. Callers match a failure kind
// with Class.Has. Nothing in this package catches or retries; every error
// propagates to the caller as-is.
var (
	ErrFormat        = errs.Class("invalid amount format")
	ErrDecimals      = errs.Class("invalid decimals")
	ErrDivideByZero  = errs.Class("division by zero")
	ErrNegativePrice = errs.Class("negative price")
	ErrBps           = errs.Class("invalid bps")
	ErrLotSize       = errs.Class("invalid lot size")
	ErrQuantity      = errs.Class("invalid quantity")
)
