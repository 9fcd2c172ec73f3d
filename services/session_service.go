// services/session_service.go
package services

import (
	"errors"

	"github.com/deividev5/Daily-Diet/models"
	"github.com/deividev5/Daily-Diet/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSessionNotFound means a session token was presented but matches no
// user. Callers treat it exactly like a missing credential.
var ErrSessionNotFound = errors.New("no user matches the presented session token")

// DefaultUserName is used when a session is opened without a name.
const DefaultUserName = "Guest"

type SessionService struct{ db *gorm.DB }

func NewSessionService(db *gorm.DB) *SessionService { return &SessionService{db: db} }

// ResolveOrCreate maps a presented session token to its user.
//
// With no token, a fresh token is generated and a new user created under it;
// issued reports that the caller must hand user.SessionToken back to the
// client as a cookie. With a known token the existing user is returned, and
// a supplied name that differs from the stored one renames the user in
// place without issuing a new token. A token that matches nobody is an
// inconsistent session and yields ErrSessionNotFound.
//
// Same token, no name: calling twice returns the same user with no side
// effects.
func (s *SessionService) ResolveOrCreate(token, name string) (*models.User, bool, error) {
	if token == "" {
		fresh, err := utils.GenerateSessionToken()
		if err != nil {
			return nil, false, err
		}

		user := models.User{
			ID:           uuid.NewString(),
			Name:         DefaultUserName,
			SessionToken: fresh,
		}
		if name != "" {
			user.Name = name
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, false, err
		}
		return &user, true, nil
	}

	user, err := s.CurrentUser(token)
	if err != nil {
		return nil, false, err
	}

	if name != "" && name != user.Name {
		if err := s.db.Model(user).Update("name", name).Error; err != nil {
			return nil, false, err
		}
		user.Name = name
	}

	return user, false, nil
}

// CurrentUser resolves the token carried by an authenticated request to its
// user record.
func (s *SessionService) CurrentUser(token string) (*models.User, error) {
	var user models.User
	err := s.db.Where("session_token = ?", token).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
