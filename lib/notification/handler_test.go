package notificationhandler

import (
	"sync"
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
	usersstore "hr-records-backend/lib/users/store"
	"hr-records-backend/lib/utils/testdb"
	"hr-records-backend/models"
	wsmodels "hr-records-backend/models/ws"
)

type fakeHub struct {
	mu   sync.Mutex
	sent []wsmodels.ServerMessage
}

func (h *fakeHub) AddClient(string, *websocket.Conn) {}
func (h *fakeHub) DeleteClient(string)               {}
func (h *fakeHub) SendClose(string)                  {}
func (h *fakeHub) IsConnected(string) bool           { return false }
func (h *fakeHub) SendMessage(msg wsmodels.ServerMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sent = append(h.sent, msg)
}

func (h *fakeHub) messages() []wsmodels.ServerMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]wsmodels.ServerMessage{}, h.sent...)
}

type fakeMailer struct {
	configured bool
	mails      chan string
}

func (m *fakeMailer) IsConfigured() bool { return m.configured }
func (m *fakeMailer) SendEMail(to, subject, message string) error {
	m.mails <- to + "|" + subject
	return nil
}

func TestStatusChanged(t *testing.T) {
	conn := testdb.New(t)
	creator := testdb.User(t, conn, "hr@example.com", models.HRRole)
	manager := testdb.User(t, conn, "manager@example.com", models.ManagerRole)

	msg := StatusMessage{
		RecordKind:   models.AwardKind,
		RecordID:     "rec-1",
		Status:       models.RecordStatusApproved,
		EmployeeName: "Jane Doe",
		CreatorID:    creator.ID,
		ChangedByID:  manager.ID,
		ChangedBy:    "Иван Петров",
	}

	t.Run(`creator gets push and email`, func(t *testing.T) {
		hub := &fakeHub{}
		mailer := &fakeMailer{configured: true, mails: make(chan string, 1)}
		NewInstance(usersstore.NewInstance(conn), hub, mailer).StatusChanged(msg)

		sent := hub.messages()
		require.Len(t, sent, 1)
		require.Equal(t, creator.ID, sent[0].ToUserID)
		require.Equal(t, string(models.PushRecordApproved), sent[0].Code)
		require.Contains(t, sent[0].Msg, "Jane Doe")
		require.Contains(t, sent[0].Msg, "Иван Петров")
		require.Equal(t, "rec-1", sent[0].RecordID)

		select {
		case mail := <-mailer.mails:
			require.Equal(t, "hr@example.com|Запись согласована", mail)
		case <-time.After(time.Second):
			t.Fatal("письмо не отправлено")
		}
	})

	t.Run(`own decision is not notified`, func(t *testing.T) {
		hub := &fakeHub{}
		own := msg
		own.ChangedByID = creator.ID
		NewInstance(usersstore.NewInstance(conn), hub, nil).StatusChanged(own)
		require.Empty(t, hub.messages())
	})

	t.Run(`system user`, func(t *testing.T) {
		hub := &fakeHub{}
		system := msg
		system.Status = models.RecordStatusCompleted
		system.ChangedByID = ""
		system.ChangedBy = ""
		NewInstance(usersstore.NewInstance(conn), hub, &fakeMailer{}).StatusChanged(system)
		sent := hub.messages()
		require.Len(t, sent, 1)
		require.Contains(t, sent[0].Msg, models.SystemUser)
	})

	t.Run(`pending status has no message`, func(t *testing.T) {
		hub := &fakeHub{}
		pending := msg
		pending.Status = models.RecordStatusPending
		NewInstance(usersstore.NewInstance(conn), hub, nil).StatusChanged(pending)
		require.Empty(t, hub.messages())
	})
}
