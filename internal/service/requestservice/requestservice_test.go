package requestservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/pg"
	"github.com/GlebRadaev/piggybank/internal/service/ledgerservice"
	"github.com/GlebRadaev/piggybank/internal/service/permissionservice"
)

const (
	groupID   = "11111111-1111-1111-1111-111111111111"
	parentID  = "22222222-2222-2222-2222-222222222222"
	childID   = "33333333-3333-3333-3333-333333333333"
	otherID   = "55555555-5555-5555-5555-555555555555"
	requestID = "66666666-6666-6666-6666-666666666666"
)

var (
	adminPerm  = &domain.Permission{Role: domain.RoleAdmin, IsOwner: true}
	memberPerm = &domain.Permission{Role: domain.RoleMember}
)

type mocks struct {
	gate      *permissionservice.MockGate
	requests  *MockRequestRepo
	accounts  *MockAccountRepo
	ledger    *ledgerservice.MockLedgerRepo
	txManager *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		gate:      permissionservice.NewMockGate(ctrl),
		requests:  NewMockRequestRepo(ctrl),
		accounts:  NewMockAccountRepo(ctrl),
		ledger:    ledgerservice.NewMockLedgerRepo(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
	}
	return New(m.gate, m.requests, m.accounts, m.ledger, m.txManager), m
}

func (m *mocks) passthroughTx() {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
}

func pendingRequest(amount int64, destination domain.Destination) *domain.OpenRequest {
	return &domain.OpenRequest{
		ID:          requestID,
		GroupID:     groupID,
		ChildID:     childID,
		Amount:      amount,
		Destination: destination,
		Status:      domain.StatusPending,
	}
}

func entry(typ domain.TransactionType, amount int64) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		tx, ok := x.(*domain.Transaction)
		return ok && tx.Type == typ && tx.Amount == amount &&
			tx.RequestID != nil && *tx.RequestID == requestID && tx.ActorID == parentID
	})
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name         string
		amount       int64
		destination  domain.Destination
		reason       string
		prepareMock  func(m *mocks)
		insufficient bool
		expectedErr  error
	}{
		{
			name:        "Covered by bank balance",
			amount:      1000,
			destination: domain.DestinationWallet,
			reason:      "  new game  ",
			prepareMock: func(m *mocks) {
				m.gate.EXPECT().Check(gomock.Any(), childID, groupID, domain.RoleNone).Return(memberPerm, nil)
				m.accounts.EXPECT().GetAccount(gomock.Any(), groupID, childID).Return(&domain.Account{Balance: 1000}, nil)
				m.requests.EXPECT().CreateOpenRequest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.OpenRequest) (*domain.OpenRequest, error) {
						assert.Equal(t, "new game", req.Reason)
						assert.Equal(t, domain.StatusPending, req.Status)
						req.ID = requestID
						return req, nil
					})
			},
		},
		{
			name:        "Shortfall is flagged but the request is created",
			amount:      5000,
			destination: domain.DestinationCash,
			prepareMock: func(m *mocks) {
				m.gate.EXPECT().Check(gomock.Any(), childID, groupID, domain.RoleNone).Return(memberPerm, nil)
				m.accounts.EXPECT().GetAccount(gomock.Any(), groupID, childID).Return(&domain.Account{Balance: 1000}, nil)
				m.requests.EXPECT().CreateOpenRequest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.OpenRequest) (*domain.OpenRequest, error) {
						req.ID = requestID
						return req, nil
					})
			},
			insufficient: true,
		},
		{
			name:        "Missing account counts as shortfall",
			amount:      10,
			destination: domain.DestinationCash,
			prepareMock: func(m *mocks) {
				m.gate.EXPECT().Check(gomock.Any(), childID, groupID, domain.RoleNone).Return(memberPerm, nil)
				m.accounts.EXPECT().GetAccount(gomock.Any(), groupID, childID).Return(nil, nil)
				m.requests.EXPECT().CreateOpenRequest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.OpenRequest) (*domain.OpenRequest, error) { return req, nil })
			},
			insufficient: true,
		},
		{
			name:        "Invalid destination",
			amount:      10,
			destination: domain.Destination("bank"),
			prepareMock: func(m *mocks) {},
			expectedErr: domain.ErrInvalidDestination,
		},
		{
			name:        "Zero amount",
			amount:      0,
			destination: domain.DestinationCash,
			prepareMock: func(m *mocks) {},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:        "Not a member",
			amount:      10,
			destination: domain.DestinationCash,
			prepareMock: func(m *mocks) {
				m.gate.EXPECT().Check(gomock.Any(), childID, groupID, domain.RoleNone).Return(nil, domain.ErrForbidden)
			},
			expectedErr: domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			receipt, err := service.Create(context.Background(), childID, groupID, tt.amount, tt.reason, tt.destination)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.insufficient, receipt.InsufficientBalance)
			assert.Equal(t, domain.StatusPending, receipt.Request.Status)
		})
	}
}

func TestCreate_TruncatesReason(t *testing.T) {
	service, m := NewMock(t)
	m.gate.EXPECT().Check(gomock.Any(), childID, groupID, domain.RoleNone).Return(memberPerm, nil)
	m.accounts.EXPECT().GetAccount(gomock.Any(), groupID, childID).Return(&domain.Account{Balance: 100}, nil)
	m.requests.EXPECT().CreateOpenRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.OpenRequest) (*domain.OpenRequest, error) { return req, nil })

	receipt, err := service.Create(context.Background(), childID, groupID, 10, strings.Repeat("x", 250), domain.DestinationCash)

	require.NoError(t, err)
	assert.Len(t, receipt.Request.Reason, MaxReasonLength)
}

func TestApprove(t *testing.T) {
	tests := []struct {
		name        string
		callerID    string
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name:     "Wallet destination moves funds into the wallet",
			callerID: parentID,
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(pendingRequest(1000, domain.DestinationWallet), nil)
				m.gate.EXPECT().Check(gomock.Any(), parentID, groupID, domain.RoleAdmin).Return(adminPerm, nil)
				gomock.InOrder(
					m.requests.EXPECT().InsertApproval(gomock.Any(), requestID, parentID).Return(&domain.OpenApproval{}, nil),
					m.accounts.EXPECT().EnsureAccount(gomock.Any(), groupID, childID, domain.DefaultAccountName).Return(&domain.Account{Balance: 1000}, nil),
					m.accounts.EXPECT().DebitAccount(gomock.Any(), groupID, childID, int64(1000)).Return(int64(0), nil),
					m.ledger.EXPECT().InsertTransaction(gomock.Any(), domain.LedgerBank, entry(domain.TxWithdrawToWallet, 1000)).Return(&domain.Transaction{}, nil),
					m.accounts.EXPECT().EnsureWallet(gomock.Any(), groupID, childID).Return(&domain.Wallet{}, nil),
					m.accounts.EXPECT().CreditWallet(gomock.Any(), groupID, childID, int64(1000)).Return(int64(1000), nil),
					m.ledger.EXPECT().InsertTransaction(gomock.Any(), domain.LedgerWallet, entry(domain.TxWithdrawToWallet, 1000)).Return(&domain.Transaction{}, nil),
					m.requests.EXPECT().ResolveOpenRequest(gomock.Any(), requestID, domain.StatusApproved).Return(true, nil),
				)
			},
		},
		{
			name:     "Cash destination only debits the bank",
			callerID: parentID,
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(pendingRequest(300, domain.DestinationCash), nil)
				m.gate.EXPECT().Check(gomock.Any(), parentID, groupID, domain.RoleAdmin).Return(adminPerm, nil)
				m.requests.EXPECT().InsertApproval(gomock.Any(), requestID, parentID).Return(&domain.OpenApproval{}, nil)
				m.accounts.EXPECT().EnsureAccount(gomock.Any(), groupID, childID, domain.DefaultAccountName).Return(&domain.Account{}, nil)
				m.accounts.EXPECT().DebitAccount(gomock.Any(), groupID, childID, int64(300)).Return(int64(700), nil)
				m.ledger.EXPECT().InsertTransaction(gomock.Any(), domain.LedgerBank, entry(domain.TxWithdrawCash, 300)).Return(&domain.Transaction{}, nil)
				m.requests.EXPECT().ResolveOpenRequest(gomock.Any(), requestID, domain.StatusApproved).Return(true, nil)
			},
		},
		{
			name:     "Insufficient bank balance leaves the request pending",
			callerID: parentID,
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(pendingRequest(5000, domain.DestinationWallet), nil)
				m.gate.EXPECT().Check(gomock.Any(), parentID, groupID, domain.RoleAdmin).Return(adminPerm, nil)
				m.requests.EXPECT().InsertApproval(gomock.Any(), requestID, parentID).Return(&domain.OpenApproval{}, nil)
				m.accounts.EXPECT().EnsureAccount(gomock.Any(), groupID, childID, domain.DefaultAccountName).Return(&domain.Account{Balance: 1000}, nil)
				m.accounts.EXPECT().DebitAccount(gomock.Any(), groupID, childID, int64(5000)).Return(int64(0), domain.ErrInsufficientBalance)
			},
			expectedErr: domain.ErrInsufficientBalance,
		},
		{
			name:     "Already approved by another guardian",
			callerID: otherID,
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				req := pendingRequest(1000, domain.DestinationWallet)
				req.Status = domain.StatusApproved
				m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(req, nil)
				m.gate.EXPECT().Check(gomock.Any(), otherID, groupID, domain.RoleAdmin).Return(&domain.Permission{Role: domain.RoleAdmin}, nil)
			},
			expectedErr: domain.ErrNotPending,
		},
		{
			name:     "Concurrent duplicate approval by the same guardian",
			callerID: parentID,
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(pendingRequest(1000, domain.DestinationWallet), nil)
				m.gate.EXPECT().Check(gomock.Any(), parentID, groupID, domain.RoleAdmin).Return(adminPerm, nil)
				m.requests.EXPECT().InsertApproval(gomock.Any(), requestID, parentID).Return(nil, domain.ErrAlreadyApproved)
			},
			expectedErr: domain.ErrAlreadyApproved,
		},
		{
			name:     "Requester cannot approve even as admin",
			callerID: childID,
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(pendingRequest(1000, domain.DestinationWallet), nil)
				m.gate.EXPECT().Check(gomock.Any(), childID, groupID, domain.RoleAdmin).Return(&domain.Permission{Role: domain.RoleAdmin}, nil)
			},
			expectedErr: domain.ErrSelfApproval,
		},
		{
			name:     "Member cannot approve",
			callerID: otherID,
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(pendingRequest(1000, domain.DestinationWallet), nil)
				m.gate.EXPECT().Check(gomock.Any(), otherID, groupID, domain.RoleAdmin).Return(nil, domain.ErrForbidden)
			},
			expectedErr: domain.ErrForbidden,
		},
		{
			name:     "Unknown request",
			callerID: parentID,
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name:     "Ledger failure aborts the approval",
			callerID: parentID,
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(pendingRequest(1000, domain.DestinationCash), nil)
				m.gate.EXPECT().Check(gomock.Any(), parentID, groupID, domain.RoleAdmin).Return(adminPerm, nil)
				m.requests.EXPECT().InsertApproval(gomock.Any(), requestID, parentID).Return(&domain.OpenApproval{}, nil)
				m.accounts.EXPECT().EnsureAccount(gomock.Any(), groupID, childID, domain.DefaultAccountName).Return(&domain.Account{}, nil)
				m.accounts.EXPECT().DebitAccount(gomock.Any(), groupID, childID, int64(1000)).Return(int64(0), nil)
				m.ledger.EXPECT().InsertTransaction(gomock.Any(), domain.LedgerBank, gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			req, err := service.Approve(context.Background(), tt.callerID, groupID, requestID)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusApproved, req.Status)
		})
	}
}

func TestApprove_WrongGroup(t *testing.T) {
	service, m := NewMock(t)
	m.passthroughTx()
	m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(pendingRequest(10, domain.DestinationCash), nil)

	_, err := service.Approve(context.Background(), parentID, otherID, requestID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReject(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name: "Rejected without touching balances",
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(pendingRequest(10, domain.DestinationCash), nil)
				m.gate.EXPECT().Check(gomock.Any(), parentID, groupID, domain.RoleAdmin).Return(adminPerm, nil)
				m.requests.EXPECT().ResolveOpenRequest(gomock.Any(), requestID, domain.StatusRejected).Return(true, nil)
			},
		},
		{
			name: "Already processed",
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				req := pendingRequest(10, domain.DestinationCash)
				req.Status = domain.StatusRejected
				m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(req, nil)
				m.gate.EXPECT().Check(gomock.Any(), parentID, groupID, domain.RoleAdmin).Return(adminPerm, nil)
			},
			expectedErr: domain.ErrNotPending,
		},
		{
			name: "Not admin",
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.requests.EXPECT().GetOpenRequestForUpdate(gomock.Any(), requestID).Return(pendingRequest(10, domain.DestinationCash), nil)
				m.gate.EXPECT().Check(gomock.Any(), parentID, groupID, domain.RoleAdmin).Return(nil, domain.ErrForbidden)
			},
			expectedErr: domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.Reject(context.Background(), parentID, groupID, requestID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestList(t *testing.T) {
	requests := []domain.OpenRequest{*pendingRequest(10, domain.DestinationCash)}

	t.Run("Member sees own requests", func(t *testing.T) {
		service, m := NewMock(t)
		m.gate.EXPECT().Check(gomock.Any(), childID, groupID, domain.RoleNone).Return(memberPerm, nil)
		m.requests.EXPECT().ListOpenRequests(gomock.Any(), groupID, childID, domain.RequestStatus(""), ListLimit).Return(requests, nil)

		result, err := service.List(context.Background(), childID, groupID)
		require.NoError(t, err)
		assert.Equal(t, requests, result)
	})

	t.Run("Admin sees the whole group", func(t *testing.T) {
		service, m := NewMock(t)
		m.gate.EXPECT().Check(gomock.Any(), parentID, groupID, domain.RoleNone).Return(adminPerm, nil)
		m.requests.EXPECT().ListOpenRequests(gomock.Any(), groupID, "", domain.RequestStatus(""), ListLimit).Return(requests, nil)

		result, err := service.List(context.Background(), parentID, groupID)
		require.NoError(t, err)
		assert.Equal(t, requests, result)
	})

	t.Run("Outsider is forbidden", func(t *testing.T) {
		service, m := NewMock(t)
		m.gate.EXPECT().Check(gomock.Any(), otherID, groupID, domain.RoleNone).Return(nil, domain.ErrForbidden)

		_, err := service.List(context.Background(), otherID, groupID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
