package user

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"strings"

	uuid "github.com/satori/go.uuid"

	"myple/internal/common"
)

// Service keeps the registered users and their sessions in memory.
// There is no persistence and no real identity model; registration and
// login exist to gate the gendered lounges and to name the current
// user.
type Service struct {
	byID     map[string]User
	byName   map[string]string // lowercased name -> id
	sessions map[string]string // session key -> user id
}

func NewService() *Service {
	return &Service{
		byID:     make(map[string]User),
		byName:   make(map[string]string),
		sessions: make(map[string]string),
	}
}

func (s *Service) Register(u User) (User, error) {
	if err := validateUser(u); err != nil {
		return User{}, err
	}
	u.Name = strings.ToUpper(strings.TrimSpace(u.Name))
	if _, taken := s.byName[strings.ToLower(u.Name)]; taken {
		return User{}, common.InvalidArgumentError(nil, "user with this name already exists")
	}
	u.generateID()
	u.hashPassword()
	s.byID[u.ID] = u
	s.byName[strings.ToLower(u.Name)] = u.ID
	common.InfoLogger.Printf("new user %s registered", u.Name)
	u.cleanUp()
	return u, nil
}

// NewSession logs a user in by name and returns the session token,
// session key and user id joined with "|".
func (s *Service) NewSession(name, pwd string) (string, error) {
	id, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", common.NotFoundError(nil, "cannot find user with this name")
	}
	u := s.byID[id]
	if !u.comparePassword(u.Password, pwd) {
		return "", common.InvalidArgumentError(nil, "password is incorrect")
	}
	code := generateSessionCode()
	s.sessions[code] = u.ID
	return code + "|" + u.ID, nil
}

func (s *Service) CheckSession(key, userID string) (User, error) {
	id, ok := s.sessions[key]
	if !ok || id != userID {
		return User{}, common.PermissionError(nil, "session is invalid")
	}
	u := s.byID[id]
	u.cleanUp()
	return u, nil
}

func (s *Service) LogOut(userID string) {
	for key, id := range s.sessions {
		if id == userID {
			delete(s.sessions, key)
		}
	}
}

func (s *Service) FindUser(id string) (User, error) {
	u, ok := s.byID[id]
	if !ok {
		return User{}, common.NotFoundError(nil, "cannot find user")
	}
	u.cleanUp()
	return u, nil
}

// CanEnterBoard applies the lounge gating: the men's lounge admits
// male users only and the women's lounge female users only. Every
// other board is open.
func CanEnterBoard(u User, boardID string) error {
	switch boardID {
	case "mens":
		if u.Gender != Male {
			return common.PermissionError(nil, "men's lounge is restricted")
		}
	case "womens":
		if u.Gender != Female {
			return common.PermissionError(nil, "women's lounge is restricted")
		}
	}
	return nil
}

func generateSessionCode() string {
	h := hmac.New(sha256.New, []byte("myple session"))
	h.Write(uuid.NewV4().Bytes())
	return fmt.Sprintf("%x", h.Sum(nil))
}
