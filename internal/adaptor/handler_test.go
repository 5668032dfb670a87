package adaptor

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"solar-marketplace/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRespondError_StatusByKind(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", apperr.Validationf("price: Must be positive"), http.StatusBadRequest, `"status":"fail"`},
		{"authentication", apperr.Unauthenticated("Invalid credentials"), http.StatusUnauthorized, `"status":"fail"`},
		{"authorization", apperr.Forbidden("Not the owner"), http.StatusForbidden, `"status":"fail"`},
		{"not found", apperr.NotFoundf("listing not found"), http.StatusNotFound, `"status":"fail"`},
		{"conflict", apperr.Conflictf("phone already registered"), http.StatusConflict, `"status":"fail"`},
		{"rate limited", apperr.RateLimited("Too many attempts"), http.StatusTooManyRequests, `"status":"fail"`},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError, `"status":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, zap.NewNop(), tt.err, "handle request")

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestRespondError_ValidationCarriesFieldDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := apperr.ValidationFields("name: Minimum length is 2",
		map[string]string{"name": "Minimum length is 2"})

	respondError(rec, zap.NewNop(), err, "submit listing")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"errors"`)
	assert.Contains(t, rec.Body.String(), "Minimum length is 2")
}

func TestRespondError_InternalHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()

	respondError(rec, zap.NewNop(), apperr.Internal(errors.New("dial tcp: refused")), "browse listings")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	assert.NotContains(t, rec.Body.String(), "dial tcp")
}
