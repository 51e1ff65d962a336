package service

import "errors"

// ErrSubmitterUnavailable is reported when no submitter was configured.
var ErrSubmitterUnavailable = errors.New("fraud service client unavailable")

// SubmitterState records whether a submitter could be constructed at
// startup. An unavailable state makes every submission fail with its cause.
type SubmitterState struct {
	submitter Submitter
	err       error
}

// Available wraps a working submitter. A nil submitter is unavailable.
func Available(sub Submitter) SubmitterState {
	if sub == nil {
		return Unavailable(nil)
	}
	return SubmitterState{submitter: sub}
}

// Unavailable records why no submitter exists.
func Unavailable(cause error) SubmitterState {
	if cause == nil {
		cause = ErrSubmitterUnavailable
	}
	return SubmitterState{err: cause}
}

// Ready reports whether submissions can be attempted.
func (s SubmitterState) Ready() bool {
	return s.submitter != nil
}

// Get returns the submitter or the reason it is missing. The zero
// SubmitterState is unavailable.
func (s SubmitterState) Get() (Submitter, error) {
	if s.submitter == nil {
		if s.err == nil {
			return nil, ErrSubmitterUnavailable
		}
		return nil, s.err
	}
	return s.submitter, nil
}
