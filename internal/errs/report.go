package errs

import (
	"errors"
	"strings"
)

// Report boxes a single failure cause together with its chain of wrapped
// origins. It is the only error type the HTTP layer accepts for rendering:
// handlers wrap whatever the service returned into a Report and hand it to
// the classifier, which logs the whole chain and picks a safe response.
type Report struct {
	err error
}

// NewReport wraps err into a Report. A nil err yields a nil Report.
func NewReport(err error) *Report {
	if err == nil {
		return nil
	}
	return &Report{err: err}
}

// Error implements the error interface by rendering the top-level cause.
func (r *Report) Error() string {
	return r.err.Error()
}

// Unwrap exposes the boxed cause so errors.Is and errors.As see through
// the Report.
func (r *Report) Unwrap() error {
	return r.err
}

// Chain renders every cause in the unwrap chain, outermost first, joined
// with ": ". It is intended for operator-facing logs and must never be
// written into a client response.
func (r *Report) Chain() string {
	var parts []string
	for err := r.err; err != nil; err = errors.Unwrap(err) {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, ": ")
}
