package upstream

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks a resolution where every candidate reported a definitive
// absence (HTTP 404 or success:false).
var ErrNotFound = errors.New("not found")

// CandidateError is the failure of a single candidate.
type CandidateError struct {
	Candidate string
	Status    int
	// Absent is set for definitive absences. Everything else is a
	// transport failure.
	Absent bool
	Err    error
}

func (e *CandidateError) Error() string {
	var b strings.Builder
	b.WriteString(e.Candidate)
	if e.Status != 0 {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *CandidateError) Unwrap() error {
	return e.Err
}

func absent(status int, err error) *CandidateError {
	return &CandidateError{Status: status, Absent: true, Err: err}
}

func failed(status int, err error) *CandidateError {
	return &CandidateError{Status: status, Err: err}
}

// NotFoundError is returned when all candidates were definitive absences.
type NotFoundError struct {
	Resource string
	Failures []*CandidateError
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found after %d candidates", e.Resource, len(e.Failures))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// TransportError is returned when at least one candidate failed for a reason
// other than a definitive absence.
type TransportError struct {
	Resource string
	Failures []*CandidateError
}

func (e *TransportError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("%s: all %d candidates failed: %s", e.Resource, len(e.Failures), strings.Join(msgs, "; "))
}

func (e *TransportError) Unwrap() []error {
	out := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		out[i] = f
	}
	return out
}

// Failures returns the per-candidate causes carried by err, if any.
func Failures(err error) []*CandidateError {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Failures
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Failures
	}
	return nil
}

func exhausted(resource string, failures []*CandidateError) error {
	if len(failures) == 0 {
		return &TransportError{Resource: resource}
	}
	for _, f := range failures {
		if !f.Absent {
			return &TransportError{Resource: resource, Failures: failures}
		}
	}
	return &NotFoundError{Resource: resource, Failures: failures}
}
