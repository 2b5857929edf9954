package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the remote has no record for a submission.
var ErrNotFound = errors.New("submission not found")

// ListingError wraps a failure while paginating the submission list.
// A listing error aborts the whole sync.
type ListingError struct {
	Err error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("list submissions: %v", e.Err)
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

// DetailFetchError wraps a failure to fetch one submission detail.
type DetailFetchError struct {
	ID  string
	Err error
}

func (e *DetailFetchError) Error() string {
	return fmt.Sprintf("fetch submission %s: %v", e.ID, e.Err)
}

func (e *DetailFetchError) Unwrap() error {
	return e.Err
}
