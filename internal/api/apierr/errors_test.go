package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/susround/internal/model"
)

func TestWriteErrorMapsModelErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", model.ErrSessionNotFound, http.StatusNotFound, CodeSessionNotFound},
		{"empty name", model.ErrEmptyName, http.StatusBadRequest, CodeEmptyName},
		{"duplicate", model.ErrDuplicateName, http.StatusConflict, CodeDuplicateName},
		{"wrapped insufficient", fmt.Errorf("%w: have 2", model.ErrInsufficientPlayers), http.StatusConflict, CodeInsufficientPlayers},
		{"no suspect", model.ErrNoSuspectSelected, http.StatusConflict, CodeNoSuspectSelected},
		{"not allowed", fmt.Errorf("%w: call_meeting during lobby", model.ErrActionNotAllowed), http.StatusConflict, CodeActionNotAllowed},
		{"unknown", model.ErrUnknownAction, http.StatusBadRequest, CodeUnknownAction},
		{"invalid request", NewInvalidRequestError("bad"), http.StatusBadRequest, CodeInvalidRequest},
		{"other", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, errors.New("redis: connection refused"))

	assert.NotContains(t, rr.Body.String(), "redis")
}
