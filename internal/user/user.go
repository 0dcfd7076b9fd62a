package user

import (
	uuid "github.com/satori/go.uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Password   string `json:"password,omitempty"`
	RepeatPWD  string `json:"repeat_pwd,omitempty"`
	Gender     Gender `json:"gender"`
	GenderText string `json:"gender_text"`
	Avatar     string `json:"avatar"`
}

type Gender uint8

const (
	Other Gender = iota
	Male
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	case Other:
		return "other"
	default:
		return ""
	}
}

// defaultAvatar mirrors the registration screen's gender presets.
func (g Gender) defaultAvatar() string {
	switch g {
	case Male:
		return "👨‍🎓"
	case Female:
		return "👩‍🎓"
	default:
		return "🎮"
	}
}

func (u *User) generateID() {
	u.ID = uuid.NewV4().String()
}

func (u *User) hashPassword() {
	hash, _ := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	u.Password = string(hash)
}

func (u *User) comparePassword(hash, pw string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
	return err == nil
}

func (u *User) cleanUp() {
	u.Password = ""
	u.RepeatPWD = ""
	u.GenderText = u.Gender.String()
	if u.Avatar == "" {
		u.Avatar = u.Gender.defaultAvatar()
	}
}
