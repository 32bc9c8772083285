package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"voyage/shared/failure"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "bad request",
			err:  failure.BadRequestFromString("missing field"),
			want: http.StatusBadRequest,
		},
		{
			name: "unauthorized",
			err:  failure.Unauthorized("wrong password"),
			want: http.StatusUnauthorized,
		},
		{
			name: "not found",
			err:  failure.NotFound("offer not found"),
			want: http.StatusNotFound,
		},
		{
			name: "conflict",
			err:  failure.Conflict("duplicate email"),
			want: http.StatusConflict,
		},
		{
			name: "internal error",
			err:  failure.InternalErrorFromString("boom"),
			want: http.StatusInternalServerError,
		},
		{
			name: "plain error defaults to 500",
			err:  errors.New("database error"),
			want: http.StatusInternalServerError,
		},
		{
			name: "wrapped failure keeps its code",
			err:  fmt.Errorf("failed to log in: %w", failure.Unauthorized("wrong password")),
			want: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestNilErrors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestErrorMessage(t *testing.T) {
	err := failure.BadRequestFromString("Email or phone number is required.")
	assert.Equal(t, "Email or phone number is required.", err.Error())
}
