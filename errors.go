// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ftoa

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrBufferTooSmall is the cause of every *CapacityError.
	ErrBufferTooSmall = errors.New("ftoa: buffer too small")

	// ErrUnsupportedBase indicates a valid radix other than 10. Only
	// decimal output is implemented.
	ErrUnsupportedBase = errors.New("ftoa: unsupported base")

	// ErrInvalidBase indicates a radix outside [2, 36].
	ErrInvalidBase = errors.New("ftoa: invalid base")
)

// A CapacityError records a destination too small for the formatted
// value. The bytes that fit have been written.
type CapacityError struct {
	Needed    int // length of the complete output
	Available int // length of the destination
}

func (e *CapacityError) Error() string {
	return "ftoa: buffer too small: need " + strconv.Itoa(e.Needed) +
		" bytes, have " + strconv.Itoa(e.Available)
}

// Cause returns ErrBufferTooSmall, for errors.Cause.
func (e *CapacityError) Cause() error { return ErrBufferTooSmall }

func (e *CapacityError) Unwrap() error { return ErrBufferTooSmall }

func checkBase(base int) error {
	switch {
	case base == 10:
		return nil
	case base < 2 || base > 36:
		return errors.Wrapf(ErrInvalidBase, "base %d", base)
	default:
		return errors.Wrapf(ErrUnsupportedBase, "base %d", base)
	}
}
