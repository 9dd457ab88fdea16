package game

import "errors"

var (
	// ErrNoLetterAvailable means every letter is disabled in Options.
	ErrNoLetterAvailable = errors.New("no letter available")
	// ErrContentAcquisitionFailed means the themes for a round could not be fetched.
	ErrContentAcquisitionFailed = errors.New("content acquisition failed")
	// ErrValidationFailed means answers could not be judged; the round scores zero.
	ErrValidationFailed = errors.New("validation failed")
	// ErrAllocationFailure means the round input structures could not be built.
	ErrAllocationFailure = errors.New("allocation failure")
)
