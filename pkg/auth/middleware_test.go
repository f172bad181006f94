package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService("test-secret", "")
	validToken, _ := jwtService.GenerateJWT(testUserID, time.Now().Add(time.Hour))
	upperToken, _ := jwtService.GenerateJWT(strings.ToUpper(testUserID), time.Now().Add(time.Hour))
	bracedToken, _ := jwtService.GenerateJWT("{"+testUserID+"}", time.Now().Add(time.Hour))
	compactToken, _ := jwtService.GenerateJWT(strings.ReplaceAll(testUserID, "-", ""), time.Now().Add(time.Hour))

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedUser string
	}{
		{name: "Valid bearer token", header: "Bearer " + validToken, expectedCode: http.StatusOK, expectedUser: testUserID},
		{name: "Uppercase subject is canonicalized", header: "Bearer " + upperToken, expectedCode: http.StatusOK, expectedUser: testUserID},
		{name: "Braced subject is canonicalized", header: "Bearer " + bracedToken, expectedCode: http.StatusOK, expectedUser: testUserID},
		{name: "Unhyphenated subject is canonicalized", header: "Bearer " + compactToken, expectedCode: http.StatusOK, expectedUser: testUserID},
		{name: "Missing header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic " + validToken, expectedCode: http.StatusUnauthorized},
		{name: "Garbage token", header: "Bearer nope", expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			AuthMiddleware(jwtService)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedUser, gotUser)
		})
	}
}
