package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/pkg/utils"
	"github.com/GlebRadaev/piggybank/pkg/validate"
)

const internalMessage = "Internal server error"

var statusByErr = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrInvalidName, http.StatusBadRequest},
	{domain.ErrInvalidDestination, http.StatusBadRequest},
	{domain.ErrInvalidInterval, http.StatusBadRequest},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrSelfApproval, http.StatusForbidden},
	{domain.ErrAdminSelfRequest, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrNotPending, http.StatusConflict},
	{domain.ErrAlreadyApproved, http.StatusConflict},
	{domain.ErrInsufficientBalance, http.StatusConflict},
}

// Status maps a service error to its HTTP status and client message.
// Unknown errors map to 500 with a generic message.
func Status(err error) (int, string) {
	for _, e := range statusByErr {
		if errors.Is(err, e.err) {
			return e.status, e.err.Error()
		}
	}
	return http.StatusInternalServerError, internalMessage
}

// Respond writes err as an error envelope. The cause of a 500 is logged and
// never sent to the client.
func Respond(w http.ResponseWriter, r *http.Request, err error) {
	status, message := Status(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	utils.RespondWithError(w, status, message)
}

// RespondDecode writes a 400 for a body that failed to decode or validate.
func RespondDecode(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidAmount) {
		utils.RespondWithError(w, http.StatusBadRequest, domain.ErrInvalidAmount.Error())
		return
	}
	if details := validate.Details(err); details != nil {
		utils.RespondWithDetails(w, http.StatusBadRequest, "invalid request body", details)
		return
	}
	utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
}
