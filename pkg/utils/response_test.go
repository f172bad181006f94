package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithData(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithData(w, http.StatusOK, map[string]int64{"balance": 200})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"balance":200}}`, w.Body.String())
}

func TestRespondWithMessage(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithMessage(w, http.StatusOK, "account deleted")

	assert.JSONEq(t, `{"success":true,"message":"account deleted"}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithError(w, http.StatusForbidden, "forbidden")

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "forbidden", resp.Error)
	assert.Nil(t, resp.Details)
}

func TestRespondWithDetails(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithDetails(w, http.StatusBadRequest, "invalid request body", map[string]string{"amount": "failed on 'gt' tag"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request body","details":{"amount":"failed on 'gt' tag"}}`, w.Body.String())
}
