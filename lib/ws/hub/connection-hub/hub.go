package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
	"hr-records-backend/db"
	pushstore "hr-records-backend/lib/ws/push-store"
	"hr-records-backend/models"
	dbmodels "hr-records-backend/models/db"
	wsmodels "hr-records-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = NewHub(pushstore.NewInstance(db.DB))
}

func NewHub(store pushstore.Provider) Provider {
	return &impl{
		clients: map[string]clientSession{},
		store:   store,
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
	store   pushstore.Provider
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	sess, ok := i.clients[userID]
	if ok {
		delete(i.clients, userID)
	}
	i.mu.Unlock()
	if !ok {
		return
	}
	sess.stop()
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
	go i.sendDelayedMessages(userID)
}

// SendMessage пользователю не в сети сообщение сохраняется и отправляется при подключении
func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	sess, ok := i.clients[msg.ToUserID]
	i.mu.RUnlock()
	if ok && sess.enqueue(msg) {
		return
	}
	i.saveDelayed(msg)
}

func (i *impl) SendClose(userID string) {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

func (i *impl) saveDelayed(msg wsmodels.ServerMessage) {
	if i.store == nil {
		return
	}
	rec := dbmodels.PushData{
		UserID:     msg.ToUserID,
		Code:       models.PushCode(msg.Code),
		Msg:        msg.Msg,
		Title:      msg.Title,
		RecordKind: models.RecordKind(msg.RecordKind),
		RecordID:   msg.RecordID,
	}
	if err := i.store.Create(rec); err != nil {
		log.WithError(err).WithField("user_id", msg.ToUserID).Error("ошибка сохранения отложенного уведомления")
	}
}

func (i *impl) sendDelayedMessages(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.List(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка не отправленных событий")
		return
	}
	sendedIDs := []string{}
	for _, item := range list {
		if !i.IsConnected(userID) {
			break
		}
		i.mu.RLock()
		sess, ok := i.clients[userID]
		i.mu.RUnlock()
		if !ok {
			break
		}
		msg := wsmodels.ServerMessage{
			ToUserID:   userID,
			Time:       item.CreatedAt.Format("02.01.2006 15:04:05"),
			Code:       string(item.Code),
			Title:      item.Title,
			Msg:        item.Msg,
			RecordKind: string(item.RecordKind),
			RecordID:   item.RecordID,
		}
		if sess.enqueue(msg) {
			sendedIDs = append(sendedIDs, item.ID)
		}
	}
	if len(sendedIDs) > 0 {
		err = i.store.Delete(sendedIDs)
		if err != nil {
			logger.WithError(err).Error("ошибка удаления отправленных событий")
			return
		}
	}
}
