package grouprepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/piggybank/internal/domain"
)

const (
	groupID = "11111111-1111-1111-1111-111111111111"
	ownerID = "22222222-2222-2222-2222-222222222222"
	childID = "33333333-3333-3333-3333-333333333333"
)

const membershipQuery = `SELECT g.id, g.owner_id, COALESCE(m.role, '') FROM groups g LEFT JOIN group_members m ON m.group_id = g.id AND m.user_id = $2 WHERE g.id = $1`

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_GetMembership(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr bool
		result    *domain.Membership
	}{
		{
			name:   "Member row present",
			userID: childID,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(membershipQuery)).
					WithArgs(groupID, childID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "owner_id", "role"}).
						AddRow(groupID, ownerID, domain.RoleMember))
			},
			result: &domain.Membership{GroupID: groupID, OwnerID: ownerID, UserID: childID, Role: domain.RoleMember},
		},
		{
			name:   "No membership row",
			userID: childID,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(membershipQuery)).
					WithArgs(groupID, childID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "owner_id", "role"}).
						AddRow(groupID, ownerID, domain.RoleNone))
			},
			result: &domain.Membership{GroupID: groupID, OwnerID: ownerID, UserID: childID, Role: domain.RoleNone},
		},
		{
			name:   "Group does not exist",
			userID: childID,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(membershipQuery)).
					WithArgs(groupID, childID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:   "Database error",
			userID: childID,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(membershipQuery)).
					WithArgs(groupID, childID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetMembership(context.Background(), groupID, tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListMembers(t *testing.T) {
	repo, mock := NewMock(t)
	query := `SELECT m.user_id, COALESCE(p.display_name, ''), m.role, m.user_id = g.owner_id,`

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(groupID).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "display_name", "role", "is_owner", "has_account"}).
			AddRow(ownerID, "Mom", domain.RoleMember, true, false).
			AddRow(childID, "Kid", domain.RoleMember, false, true))

	members, err := repo.ListMembers(context.Background(), groupID)

	require.NoError(t, err)
	assert.Equal(t, []domain.Member{
		{UserID: ownerID, DisplayName: "Mom", Role: domain.RoleAdmin, IsOwner: true},
		{UserID: childID, DisplayName: "Kid", Role: domain.RoleMember, HasAccount: true},
	}, members)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetDisplayNames(t *testing.T) {
	repo, mock := NewMock(t)

	names, err := repo.GetDisplayNames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, names)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, display_name FROM profiles WHERE id = ANY($1::uuid[])`)).
		WithArgs([]string{ownerID, childID}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "display_name"}).
			AddRow(ownerID, "Mom").
			AddRow(childID, "Kid"))

	names, err = repo.GetDisplayNames(context.Background(), []string{ownerID, childID})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{ownerID: "Mom", childID: "Kid"}, names)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, display_name FROM profiles`)).
		WithArgs([]string{childID}).
		WillReturnError(errors.New("database error"))

	_, err = repo.GetDisplayNames(context.Background(), []string{childID})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
