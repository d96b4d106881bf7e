package connectionhub

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-records-backend/lib/utils/testdb"
	pushstore "hr-records-backend/lib/ws/push-store"
	"hr-records-backend/models"
	wsmodels "hr-records-backend/models/ws"
)

func TestHub(t *testing.T) {
	conn := testdb.New(t)
	store := pushstore.NewInstance(conn)
	hub := NewHub(store)

	t.Run(`offline user message is stored`, func(t *testing.T) {
		require.False(t, hub.IsConnected("user-1"))
		hub.SendMessage(wsmodels.ServerMessage{
			ToUserID:   "user-1",
			Code:       string(models.PushRecordApproved),
			Title:      "Запись согласована",
			Msg:        "Награждение по сотруднику Jane Doe согласовано",
			RecordKind: string(models.AwardKind),
			RecordID:   "rec-1",
		})
		list, err := store.List("user-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, models.PushRecordApproved, list[0].Code)
		require.Equal(t, models.AwardKind, list[0].RecordKind)
		require.Equal(t, "rec-1", list[0].RecordID)

		others, err := store.List("user-2")
		require.NoError(t, err)
		require.Empty(t, others)
	})

	t.Run(`unknown client`, func(t *testing.T) {
		require.NotPanics(t, func() {
			hub.SendClose("nobody")
			hub.DeleteClient("nobody")
		})
	})

	t.Run(`store delete`, func(t *testing.T) {
		list, err := store.List("user-1")
		require.NoError(t, err)
		require.NoError(t, store.Delete([]string{list[0].ID}))
		require.NoError(t, store.Delete(nil))
		list, err = store.List("user-1")
		require.NoError(t, err)
		require.Empty(t, list)
	})
}
