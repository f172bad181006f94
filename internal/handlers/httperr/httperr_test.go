package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/pkg/utils"
	"github.com/GlebRadaev/piggybank/pkg/validate"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"Invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest, domain.ErrInvalidAmount.Error()},
		{"Wrapped invalid amount", fmt.Errorf("%w: -5", domain.ErrInvalidAmount), http.StatusBadRequest, domain.ErrInvalidAmount.Error()},
		{"Invalid name", domain.ErrInvalidName, http.StatusBadRequest, domain.ErrInvalidName.Error()},
		{"Invalid destination", domain.ErrInvalidDestination, http.StatusBadRequest, domain.ErrInvalidDestination.Error()},
		{"Invalid interval", domain.ErrInvalidInterval, http.StatusBadRequest, domain.ErrInvalidInterval.Error()},
		{"Forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"Self approval", domain.ErrSelfApproval, http.StatusForbidden, domain.ErrSelfApproval.Error()},
		{"Admin self request", domain.ErrAdminSelfRequest, http.StatusForbidden, domain.ErrAdminSelfRequest.Error()},
		{"Not found", domain.ErrNotFound, http.StatusNotFound, "not found"},
		{"Not pending", domain.ErrNotPending, http.StatusConflict, domain.ErrNotPending.Error()},
		{"Already approved", domain.ErrAlreadyApproved, http.StatusConflict, domain.ErrAlreadyApproved.Error()},
		{"Insufficient balance", domain.ErrInsufficientBalance, http.StatusConflict, "insufficient balance"},
		{"Unknown", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := Status(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestRespond_HidesInternalCause(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/piggy-bank/save", nil)

	Respond(w, r, errors.New("relation piggy_wallets does not exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "piggy_wallets")
}

func TestRespondDecode(t *testing.T) {
	type body struct {
		GroupID string `json:"groupId" validate:"required,uuid"`
	}

	t.Run("Validation details", func(t *testing.T) {
		var b body
		err := validate.DecodeJSON(strings.NewReader(`{}`), &b)
		w := httptest.NewRecorder()

		RespondDecode(w, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp utils.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Contains(t, resp.Details, "groupId")
	})

	t.Run("Syntax error", func(t *testing.T) {
		var b body
		err := validate.DecodeJSON(strings.NewReader(`{`), &b)
		w := httptest.NewRecorder()

		RespondDecode(w, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})

	t.Run("Invalid amount", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondDecode(w, fmt.Errorf("%w: 0", domain.ErrInvalidAmount))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrInvalidAmount.Error())
	})
}
