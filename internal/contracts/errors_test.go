package contracts

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"nil is ok", nil, OutcomeOK},
		{"not found", ErrReportNotFound, OutcomeNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrReportNotFound), OutcomeNotFound},
		{"connection", &ConnectionError{Err: errors.New("refused")}, OutcomeConnectionError},
		{"query", &QueryError{Report: "Monthly Revenue", Err: errors.New("bad column")}, OutcomeQueryError},
		{"invalid request", &InvalidRequestError{Field: "polynomial_degree", Reason: "must be between 1 and 5"}, OutcomeInvalidRequest},
		{"insufficient data", &InsufficientDataError{Required: 4, Got: 3, Degree: 3}, OutcomeInsufficientData},
		{"unknown error", errors.New("boom"), OutcomeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestInsufficientDataError_NamesMinimum(t *testing.T) {
	err := &InsufficientDataError{Required: 4, Got: 3, Degree: 3}
	assert.Equal(t, "need >= 4 data points for degree 3, got 3", err.Error())
}

func TestQueryError_Unwrap(t *testing.T) {
	inner := errors.New("syntax error")
	err := &QueryError{Report: "Orders Count by State", Err: inner}
	assert.ErrorIs(t, err, inner)
}

func TestForecastRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ForecastRequest
		wantErr bool
	}{
		{"valid", ForecastRequest{HorizonMonths: 6, Degree: 2}, false},
		{"min bounds", ForecastRequest{HorizonMonths: 1, Degree: 1}, false},
		{"max bounds", ForecastRequest{HorizonMonths: 36, Degree: 5}, false},
		{"horizon too low", ForecastRequest{HorizonMonths: 0, Degree: 2}, true},
		{"horizon too high", ForecastRequest{HorizonMonths: 37, Degree: 2}, true},
		{"degree too low", ForecastRequest{HorizonMonths: 6, Degree: 0}, true},
		{"degree too high", ForecastRequest{HorizonMonths: 6, Degree: 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Equal(t, OutcomeInvalidRequest, Classify(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
