package params

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/piggybank/pkg/auth"
	"github.com/GlebRadaev/piggybank/pkg/utils"
)

var ErrMissing = errors.New("missing parameter")

// Caller returns the authenticated user id and writes a 401 when the
// request carries none.
func Caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return userID, ok
}

func parseUUID(name, value string, required bool) (string, error) {
	if value == "" {
		if required {
			return "", fmt.Errorf("%w: %s", ErrMissing, name)
		}
		return "", nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return "", fmt.Errorf("invalid %s", name)
	}
	return id.String(), nil
}

func QueryUUID(r *http.Request, name string, required bool) (string, error) {
	return parseUUID(name, r.URL.Query().Get(name), required)
}

func PathUUID(r *http.Request, name string) (string, error) {
	return parseUUID(name, chi.URLParam(r, name), true)
}

// QueryInt parses an optional integer query parameter, returning def when
// it is absent.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return n, nil
}

// RespondInvalid writes a 400 for a bad query or path parameter.
func RespondInvalid(w http.ResponseWriter, err error) {
	utils.RespondWithError(w, http.StatusBadRequest, err.Error())
}
