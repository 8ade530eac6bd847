package contracts

import (
	"errors"
	"fmt"
)

// Outcome classifies every result that crosses the core boundary. The shell
// renders a one-line status message per kind without inspecting internals.
type Outcome string

const (
	OutcomeOK               Outcome = "OK"
	OutcomeEmptyResult      Outcome = "EMPTY_RESULT"
	OutcomeNotFound         Outcome = "NOT_FOUND"
	OutcomeConnectionError  Outcome = "CONNECTION_ERROR"
	OutcomeQueryError       Outcome = "QUERY_ERROR"
	OutcomeInvalidRequest   Outcome = "INVALID_REQUEST"
	OutcomeInsufficientData Outcome = "INSUFFICIENT_DATA"
	OutcomeInternalError    Outcome = "INTERNAL_ERROR"
)

// ErrReportNotFound marks a report name missing from the catalog.
var ErrReportNotFound = errors.New("report not found")

// ConnectionError marks the warehouse store as unreachable.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("warehouse unreachable: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError marks a query that the store accepted a connection for but
// failed to execute.
type QueryError struct {
	Report string
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query for %q failed: %v", e.Report, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// InvalidRequestError marks forecast parameters outside the allowed bounds.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// InsufficientDataError marks a historical series too short for the
// requested polynomial degree. Required names the minimum point count.
type InsufficientDataError struct {
	Required int
	Got      int
	Degree   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("need >= %d data points for degree %d, got %d", e.Required, e.Degree, e.Got)
}

// Classify maps an error from any core operation onto the outcome taxonomy.
// A nil error is OutcomeOK; the empty-result outcome is signalled by series
// length, not by an error, and is mapped by callers that hold the series.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrReportNotFound):
		return OutcomeNotFound
	}

	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return OutcomeConnectionError
	}
	var queryErr *QueryError
	if errors.As(err, &queryErr) {
		return OutcomeQueryError
	}
	var invalidErr *InvalidRequestError
	if errors.As(err, &invalidErr) {
		return OutcomeInvalidRequest
	}
	var insuffErr *InsufficientDataError
	if errors.As(err, &insuffErr) {
		return OutcomeInsufficientData
	}
	return OutcomeInternalError
}
