package authhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"hr-records-backend/db"
	"hr-records-backend/lib/rbac"
	usersstore "hr-records-backend/lib/users/store"
	authutils "hr-records-backend/lib/utils/auth-utils"
	authapimodels "hr-records-backend/models/api/auth"
	dbmodels "hr-records-backend/models/db"
)

var ErrUnauthorized = errors.New("неверная почта или пароль")

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Me(userID string) (authapimodels.MeView, error)
	RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		store: usersstore.NewInstance(DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "ошибка хеширования пароля")
	}
	return string(hash), nil
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		logger.Debug("активный пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, ErrUnauthorized
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, ErrUnauthorized
	}
	response, err = i.tokens(*user)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления даты последнего входа")
	}
	return response, nil
}

func (i impl) Me(userID string) (authapimodels.MeView, error) {
	user, err := i.activeUser(userID)
	if err != nil {
		return authapimodels.MeView{}, err
	}
	result := authapimodels.MeConvert(*user)
	if rbac.Instance != nil {
		result.Permissions = rbac.Instance.GetPermissions(user.Role)
	}
	return result, nil
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.JWTResponse, error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		log.WithError(err).Debug("refresh токен не прошел проверку")
		return authapimodels.JWTResponse{}, ErrUnauthorized
	}
	user, err := i.activeUser(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return i.tokens(*user)
}

func (i impl) activeUser(userID string) (*dbmodels.User, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil || !user.IsActive {
		return nil, ErrUnauthorized
	}
	return user, nil
}

func (i impl) tokens(user dbmodels.User) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}
