package bnb

import (
	"fmt"
)

var (
	errorZeroWidthRepeat = errorf("repeated parser accepted an empty match; this is an infinite loop")

	errorInvalidRange = func(min, max int) error {
		return errorf("invalid repetition range [%d, %d]", min, max)
	}
)

type bnbError struct {
	value string
}

func errorf(format string, v ...interface{}) error {
	return &bnbError{fmt.Sprintf(format, v...)}
}

func (err *bnbError) Error() string {
	return "bnb: " + err.value
}
