package fileio

import "errors"

// ErrMalformedLine is returned when a line does not contain exactly the
// expected number of whitespace-separated fields.
var ErrMalformedLine = errors.New("fileio: each line must contain exactly two integers")

// ErrQubitOutOfRange is returned when a parsed qubit index falls outside
// 0..15.
var ErrQubitOutOfRange = errors.New("fileio: qubit index out of range")

// ErrInvalidStabiliserChar is returned when a stabiliser row contains a
// character other than 'X' or 'I'.
var ErrInvalidStabiliserChar = errors.New("fileio: stabiliser row must contain only 'X' or 'I'")
