// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "errors"

// ErrInvalidDateRange is returned when a date-range search has its end
// before its start. The check runs before any network I/O.
var ErrInvalidDateRange = errors.New("invalid date range: end before start")

// ErrInvalidSort is returned for an unknown sort field or order.
var ErrInvalidSort = errors.New("invalid sort parameter")

// NetworkError reports a transport or relay failure, including non-200
// responses from the API.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "arxiv: network: " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a payload that was not well-formed Atom XML.
// Entries with missing fields do not produce parse errors; only a
// malformed document does.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "arxiv: parse: " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }
