package notificationhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"hr-records-backend/db"
	"hr-records-backend/lib/smtp"
	usersstore "hr-records-backend/lib/users/store"
	connectionhub "hr-records-backend/lib/ws/hub/connection-hub"
	"hr-records-backend/models"
	wsmodels "hr-records-backend/models/ws"
)

// StatusMessage решение по кадровой записи
type StatusMessage struct {
	RecordKind   models.RecordKind
	RecordID     string
	Status       models.RecordStatus
	EmployeeName string
	CreatorID    string
	ChangedByID  string
	ChangedBy    string
}

type Provider interface {
	StatusChanged(msg StatusMessage)
}

var Instance Provider = noop{}

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
		hub:        connectionhub.Instance,
		mailer:     smtp.Instance,
	}
}

func NewInstance(usersStore usersstore.Provider, hub connectionhub.Provider, mailer smtp.Provider) Provider {
	return impl{
		usersStore: usersStore,
		hub:        hub,
		mailer:     mailer,
	}
}

type impl struct {
	usersStore usersstore.Provider
	hub        connectionhub.Provider
	mailer     smtp.Provider
}

func (i impl) getLogger(msg StatusMessage) *log.Entry {
	return log.
		WithField("user_id", msg.CreatorID).
		WithField("record_kind", msg.RecordKind).
		WithField("rec_id", msg.RecordID)
}

func (i impl) StatusChanged(msg StatusMessage) {
	logger := i.getLogger(msg)
	// автор сам принял решение
	if msg.CreatorID == "" || msg.CreatorID == msg.ChangedByID {
		return
	}
	code, ok := models.StatusPushCode(msg.Status)
	if !ok {
		return
	}
	userName := msg.ChangedBy
	if userName == "" {
		userName = models.SystemUser
	}
	title, text := models.GetPushMsg(code, msg.RecordKind, msg.EmployeeName, userName)

	if i.hub != nil {
		i.hub.SendMessage(wsmodels.ServerMessage{
			ToUserID:   msg.CreatorID,
			Time:       time.Now().Format("02.01.2006 15:04:05"),
			Code:       string(code),
			Title:      title,
			Msg:        text,
			RecordKind: string(msg.RecordKind),
			RecordID:   msg.RecordID,
		})
	}

	if i.mailer == nil || !i.mailer.IsConfigured() {
		return
	}
	user, err := i.usersStore.GetByID(msg.CreatorID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователя")
		return
	}
	if user == nil || user.Email == "" || !user.IsActive {
		return
	}
	go func() {
		if err := i.mailer.SendEMail(user.Email, title, text); err != nil {
			logger.WithError(err).Warn("уведомление на почту не отправлено")
		}
	}()
}

type noop struct{}

func (noop) StatusChanged(StatusMessage) {}
