package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"voyage/shared/failure"
	"voyage/transport/http/response"
)

func TestWithJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  any
		wantBody string
	}{
		{
			name:     "object payload",
			payload:  map[string]bool{"confirmed": true},
			wantBody: `{"confirmed":true}`,
		},
		{
			name:     "empty slice stays a bare array",
			payload:  []string{},
			wantBody: `[]`,
		},
		{
			name:     "slice payload",
			payload:  []int{1, 2, 3},
			wantBody: `[1,2,3]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithJSON(recorder, http.StatusOK, tt.payload)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}

func TestWithMessage(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithMessage(recorder, http.StatusOK, "Customer registered successfully")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Customer registered successfully"}`, recorder.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "bad request",
			err:      failure.BadRequestFromString("Email or phone number is required."),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("Incorrect password"),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "internal error",
			err:      failure.InternalErrorFromString("database error"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)

			var body struct {
				Error string `json:"error"`
			}
			assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.err.Error(), body.Error)
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithRequestLimitExceeded(recorder)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
}
