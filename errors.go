package pgqb

import (
	"errors"
)

// Identifies the kind of an `Err`. Prefer matching the `Err` variables below
// via `errors.Is`.
type ErrCode string

const (
	ErrCodeUnknown             ErrCode = ""
	ErrCodeInvalidInput        ErrCode = "InvalidInput"
	ErrCodeConsumed            ErrCode = "Consumed"
	ErrCodeUnexpectedParameter ErrCode = "UnexpectedParameter"
	ErrCodeUnusedArgument      ErrCode = "UnusedArgument"
	ErrCodeTooManyArguments    ErrCode = "TooManyArguments"
	ErrCodeOrdinalOutOfBounds  ErrCode = "OrdinalOutOfBounds"
)

/*
Sentinels for `errors.Is`:

	if errors.Is(err, pgqb.ErrConsumed) {
		// The statement was already reified.
	}

Errors produced by the package carry extra context, so `==` won't match them.
`errors.Is` matches on the cause first, then on the code.

Builder methods report these by panicking. `TryReify` and the executors
recover them into ordinary error returns.
*/
var (
	ErrInvalidInput        = Err{Code: ErrCodeInvalidInput, Cause: errors.New(`invalid input`)}
	ErrConsumed            = Err{Code: ErrCodeConsumed, Cause: errors.New(`bucket already consumed`)}
	ErrUnexpectedParameter = Err{Code: ErrCodeUnexpectedParameter, Cause: errors.New(`unexpected parameter`)}
	ErrUnusedArgument      = Err{Code: ErrCodeUnusedArgument, Cause: errors.New(`unused argument`)}
	ErrTooManyArguments    = Err{Code: ErrCodeTooManyArguments, Cause: errors.New(`too many arguments`)}
	ErrOrdinalOutOfBounds  = Err{Code: ErrCodeOrdinalOutOfBounds, Cause: errors.New(`ordinal parameter exceeds arguments`)}
)

// Error type used throughout the package.
type Err struct {
	Code  ErrCode
	While string
	Cause error
}

// Implement `error`. Format: "[pgqb] <code> while <while>: <cause>", with
// empty parts omitted.
func (self Err) Error() string {
	if self == (Err{}) {
		return ``
	}

	buf := []byte(`[pgqb]`)
	if self.Code != ErrCodeUnknown {
		appendEnclosed(&buf, ` `, string(self.Code), ``)
	}
	if self.While != `` {
		appendEnclosed(&buf, ` while `, self.While, ``)
	}
	if self.Cause != nil {
		appendEnclosed(&buf, `: `, self.Cause.Error(), ``)
	}
	return bytesToMutableString(buf)
}

// Supports `errors.Is`.
func (self Err) Is(other error) bool {
	if self.Cause != nil && errors.Is(self.Cause, other) {
		return true
	}
	err, ok := other.(Err)
	return ok && err.Code == self.Code
}

// Supports `errors.Unwrap`.
func (self Err) Unwrap() error { return self.Cause }

func (self Err) while(while string) Err {
	self.While = while
	return self
}

func (self Err) because(cause error) Err {
	self.Cause = cause
	return self
}
