package requests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/pkg/auth"
)

const (
	groupID   = "8f14e45f-ceea-467f-a0e6-0a3a8b2b2a11"
	callerID  = "1679091c-5a88-4faf-afb5-e6087eb1b2dc"
	requestID = "45c48cce-2e2d-4fbd-aa1a-fc51c7cb0e41"
)

func NewMock(t *testing.T) (*RequestsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, callerID))
}

func newAction(id, body string) *http.Request {
	r := newRequest(http.MethodPost, "/api/piggy-bank/open-requests/"+id+"/approve", body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("requestID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(s *MockService)
		expectedCode int
		contains     string
	}{
		{
			name: "Created",
			body: `{"groupId":"` + groupID + `","amount":1000,"reason":"New game","destination":"wallet"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().Create(gomock.Any(), callerID, groupID, int64(1000), "New game", domain.DestinationWallet).
					Return(&domain.OpenRequestReceipt{Request: &domain.OpenRequest{ID: requestID, Status: domain.StatusPending}}, nil)
			},
			expectedCode: http.StatusCreated,
			contains:     `"status":"pending"`,
		},
		{
			name: "Created with shortfall",
			body: `{"groupId":"` + groupID + `","amount":5000,"destination":"cash"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().Create(gomock.Any(), callerID, groupID, int64(5000), "", domain.DestinationCash).
					Return(&domain.OpenRequestReceipt{
						Request:             &domain.OpenRequest{ID: requestID, Status: domain.StatusPending},
						InsufficientBalance: true,
					}, nil)
			},
			expectedCode: http.StatusCreated,
			contains:     `"insufficientBalance":true`,
		},
		{
			name: "Bad destination",
			body: `{"groupId":"` + groupID + `","amount":10,"destination":"bank"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().Create(gomock.Any(), callerID, groupID, int64(10), "", domain.Destination("bank")).
					Return(nil, domain.ErrInvalidDestination)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing destination",
			body:         `{"groupId":"` + groupID + `","amount":10}`,
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Infinity amount",
			body:         `{"groupId":"` + groupID + `","amount":"Infinity","destination":"cash"}`,
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.Create(w, newRequest(http.MethodPost, "/api/piggy-bank/open-requests", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.contains != "" {
				assert.Contains(t, w.Body.String(), tt.contains)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	t.Run("Listed", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().List(gomock.Any(), callerID, groupID).
			Return([]domain.OpenRequest{{ID: requestID, Amount: 100, Status: domain.StatusPending}}, nil)

		w := httptest.NewRecorder()
		handler.List(w, newRequest(http.MethodGet, "/api/piggy-bank/open-requests?group_id="+groupID, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), requestID)
	})

	t.Run("Empty list is an array", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().List(gomock.Any(), callerID, groupID).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.List(w, newRequest(http.MethodGet, "/api/piggy-bank/open-requests?group_id="+groupID, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
	})

	t.Run("Not a member", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().List(gomock.Any(), callerID, groupID).Return(nil, domain.ErrForbidden)

		w := httptest.NewRecorder()
		handler.List(w, newRequest(http.MethodGet, "/api/piggy-bank/open-requests?group_id="+groupID, ""))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestApproveHandler(t *testing.T) {
	body := `{"groupId":"` + groupID + `"}`

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name: "Approved",
			id:   requestID,
			body: body,
			prepareMock: func(s *MockService) {
				s.EXPECT().Approve(gomock.Any(), callerID, groupID, requestID).
					Return(&domain.OpenRequest{ID: requestID, Status: domain.StatusApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Self approval",
			id:   requestID,
			body: body,
			prepareMock: func(s *MockService) {
				s.EXPECT().Approve(gomock.Any(), callerID, groupID, requestID).Return(nil, domain.ErrSelfApproval)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Second approval",
			id:   requestID,
			body: body,
			prepareMock: func(s *MockService) {
				s.EXPECT().Approve(gomock.Any(), callerID, groupID, requestID).Return(nil, domain.ErrNotPending)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Insufficient balance",
			id:   requestID,
			body: body,
			prepareMock: func(s *MockService) {
				s.EXPECT().Approve(gomock.Any(), callerID, groupID, requestID).Return(nil, domain.ErrInsufficientBalance)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Malformed id",
			id:           "42",
			body:         body,
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing group",
			id:           requestID,
			body:         `{}`,
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.Approve(w, newAction(tt.id, tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"status":"approved"`)
			}
		})
	}
}

func TestRejectHandler(t *testing.T) {
	t.Run("Rejected", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Reject(gomock.Any(), callerID, groupID, requestID).Return(nil)

		w := httptest.NewRecorder()
		handler.Reject(w, newAction(requestID, `{"groupId":"`+groupID+`"}`))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown request", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Reject(gomock.Any(), callerID, groupID, requestID).Return(domain.ErrNotFound)

		w := httptest.NewRecorder()
		handler.Reject(w, newAction(requestID, `{"groupId":"`+groupID+`"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
