package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidAmount is matched by every ValidationError via errors.Is
var ErrInvalidAmount = errors.New("invalid amount")

// ErrorKind classifies why an amount was rejected
type ErrorKind int

const (
	EmptyInput ErrorKind = iota + 1
	NotNumeric
	TooManyDecimals
	Negative
	TooLarge
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case NotNumeric:
		return "NotNumeric"
	case TooManyDecimals:
		return "TooManyDecimals"
	case Negative:
		return "Negative"
	case TooLarge:
		return "TooLarge"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ValidationError reports the first validation step an input failed.
// Its message is what the display shows in place of the amount.
type ValidationError struct {
	Kind  ErrorKind
	Op    Operation
	Input string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "Input must not be empty."
	case NotNumeric:
		return "Input must be numeric."
	case TooManyDecimals:
		if e.Op == RemoveVAT {
			return "Invalid input."
		}
		return "Pence must be two decimals."
	case Negative:
		return e.Op.Subject() + " value must be non-negative."
	case TooLarge:
		return e.Op.Subject() + " value must be less than £1b."
	default:
		return ErrInvalidAmount.Error()
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidAmount
}

// KindOf returns the ErrorKind carried by err, or 0 when err is not a ValidationError
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return 0
}
