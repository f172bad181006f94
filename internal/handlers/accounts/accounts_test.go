package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/pkg/auth"
)

const (
	groupID   = "8f14e45f-ceea-467f-a0e6-0a3a8b2b2a11"
	parentID  = "1679091c-5a88-4faf-afb5-e6087eb1b2dc"
	childID   = "c9f0f895-fb98-4b91-9f1e-3e2d1c5a7b10"
	requestID = "45c48cce-2e2d-4fbd-aa1a-fc51c7cb0e41"
)

func NewMock(t *testing.T) (*AccountsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, parentID))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestEnsureAccountHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(s *MockService)
		expectedCode int
		expectedName string
	}{
		{
			name: "Provisioned",
			body: `{"groupId":"` + groupID + `","childId":"` + childID + `"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().EnsureAccount(gomock.Any(), parentID, groupID, childID).
					Return(&domain.Account{ID: "a1", GroupID: groupID, UserID: childID, Name: domain.DefaultAccountName}, nil)
			},
			expectedCode: http.StatusOK,
			expectedName: domain.DefaultAccountName,
		},
		{
			name:         "Missing child",
			body:         `{"groupId":"` + groupID + `"}`,
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Unknown field",
			body:         `{"groupId":"` + groupID + `","childId":"` + childID + `","admin":true}`,
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not admin",
			body: `{"groupId":"` + groupID + `","childId":"` + childID + `"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().EnsureAccount(gomock.Any(), parentID, groupID, childID).Return(nil, domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Storage failure",
			body: `{"groupId":"` + groupID + `","childId":"` + childID + `"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().EnsureAccount(gomock.Any(), parentID, groupID, childID).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.EnsureAccount(w, newRequest(http.MethodPost, "/api/piggy-bank/accounts", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp struct {
					Success bool `json:"success"`
					Data    struct {
						Name string `json:"name"`
					} `json:"data"`
				}
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.Equal(t, tt.expectedName, resp.Data.Name)
			}
		})
	}
}

func TestEnsureAccountHandler_Unauthorized(t *testing.T) {
	handler, _ := NewMock(t)
	r := httptest.NewRequest(http.MethodPost, "/api/piggy-bank/accounts", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.EnsureAccount(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteAccountHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name:   "Deleted",
			target: "/api/piggy-bank/accounts?group_id=" + groupID + "&child_id=" + childID,
			prepareMock: func(s *MockService) {
				s.EXPECT().DeleteAccount(gomock.Any(), parentID, groupID, childID).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing child",
			target:       "/api/piggy-bank/accounts?group_id=" + groupID,
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed group",
			target:       "/api/piggy-bank/accounts?group_id=1&child_id=" + childID,
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Nothing to delete",
			target: "/api/piggy-bank/accounts?group_id=" + groupID + "&child_id=" + childID,
			prepareMock: func(s *MockService) {
				s.EXPECT().DeleteAccount(gomock.Any(), parentID, groupID, childID).Return(domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.DeleteAccount(w, newRequest(http.MethodDelete, tt.target, ""))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRenameAccountHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name: "Own account",
			body: `{"groupId":"` + groupID + `","name":"Bike fund"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().RenameAccount(gomock.Any(), parentID, groupID, "", "Bike fund").
					Return(&domain.Account{Name: "Bike fund"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Name too short",
			body: `{"groupId":"` + groupID + `","childId":"` + childID + `","name":"x"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().RenameAccount(gomock.Any(), parentID, groupID, childID, "x").Return(nil, domain.ErrInvalidName)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Missing account",
			body: `{"groupId":"` + groupID + `","name":"Bike fund"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().RenameAccount(gomock.Any(), parentID, groupID, "", "Bike fund").Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.RenameAccount(w, newRequest(http.MethodPatch, "/api/piggy-bank/accounts/name", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAccountRequestHandlers(t *testing.T) {
	t.Run("Request filed", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().RequestAccount(gomock.Any(), parentID, groupID).
			Return(&domain.AccountRequest{ID: requestID, GroupID: groupID, Status: domain.StatusPending}, nil)

		w := httptest.NewRecorder()
		handler.RequestAccount(w, newRequest(http.MethodPost, "/api/piggy-bank/account-requests", `{"groupId":"`+groupID+`"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
	})

	t.Run("Admin self request", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().RequestAccount(gomock.Any(), parentID, groupID).Return(nil, domain.ErrAdminSelfRequest)

		w := httptest.NewRecorder()
		handler.RequestAccount(w, newRequest(http.MethodPost, "/api/piggy-bank/account-requests", `{"groupId":"`+groupID+`"}`))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("List pending", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListAccountRequests(gomock.Any(), parentID, groupID).
			Return([]domain.AccountRequest{{ID: requestID, DisplayName: "Mia", Status: domain.StatusPending}}, nil)

		w := httptest.NewRecorder()
		handler.ListAccountRequests(w, newRequest(http.MethodGet, "/api/piggy-bank/account-requests?group_id="+groupID, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"displayName":"Mia"`)
	})

	t.Run("List without group", func(t *testing.T) {
		handler, _ := NewMock(t)

		w := httptest.NewRecorder()
		handler.ListAccountRequests(w, newRequest(http.MethodGet, "/api/piggy-bank/account-requests", ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Reject", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().RejectAccountRequest(gomock.Any(), parentID, requestID).Return(nil)

		w := httptest.NewRecorder()
		r := withURLParam(newRequest(http.MethodPost, "/api/piggy-bank/account-requests/"+requestID+"/reject", ""), "requestID", requestID)
		handler.RejectAccountRequest(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Reject already handled", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().RejectAccountRequest(gomock.Any(), parentID, requestID).Return(domain.ErrNotPending)

		w := httptest.NewRecorder()
		r := withURLParam(newRequest(http.MethodPost, "/api/piggy-bank/account-requests/"+requestID+"/reject", ""), "requestID", requestID)
		handler.RejectAccountRequest(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Reject malformed id", func(t *testing.T) {
		handler, _ := NewMock(t)

		w := httptest.NewRecorder()
		r := withURLParam(newRequest(http.MethodPost, "/api/piggy-bank/account-requests/x/reject", ""), "requestID", "x")
		handler.RejectAccountRequest(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
