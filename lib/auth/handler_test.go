package authhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-records-backend/config"
	"hr-records-backend/lib/rbac"
	"hr-records-backend/lib/utils/testdb"
	"hr-records-backend/models"
	dbmodels "hr-records-backend/models/db"
)

func TestAuth(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 120
	rbac.NewHandler()

	conn := testdb.New(t)
	hash, err := HashPassword("p@ss")
	require.NoError(t, err)
	user := dbmodels.User{Email: "hr@example.com", Password: hash, FirstName: "Jane", LastName: "Doe", Role: models.HRRole, IsActive: true}
	require.NoError(t, conn.Create(&user).Error)
	blocked := dbmodels.User{Email: "old@example.com", Password: hash, Role: models.HRRole}
	require.NoError(t, conn.Create(&blocked).Error)
	h := NewInstance(conn)

	_, err = h.Login("hr@example.com", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = h.Login("nobody@example.com", "p@ss")
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = h.Login("old@example.com", "p@ss")
	require.ErrorIs(t, err, ErrUnauthorized)

	tokens, err := h.Login("HR@example.com", "p@ss")
	require.NoError(t, err)
	require.NotEmpty(t, tokens.Token)
	require.NotEmpty(t, tokens.RefreshToken)

	refreshed, err := h.RefreshToken(tokens.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.Token)
	_, err = h.RefreshToken(tokens.Token)
	require.ErrorIs(t, err, ErrUnauthorized)

	me, err := h.Me(user.ID)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", me.FullName)
	require.Equal(t, "HR", me.Role)
	require.Contains(t, me.Permissions[models.AwardModule], models.CreatePermission)
	require.NotContains(t, me.Permissions[models.AwardModule], models.ApprovePermission)
	_, err = h.Me(blocked.ID)
	require.ErrorIs(t, err, ErrUnauthorized)
}
