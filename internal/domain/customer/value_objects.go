package customer

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidUsername  = errors.New("username must be 3 to 50 characters")
	ErrInvalidFirstName = errors.New("first name must be 1 to 100 characters")
	ErrPasswordTooWeak  = errors.New("password must be at least 8 characters long")
)

const (
	usernameMinLen  = 3
	usernameMaxLen  = 50
	firstNameMaxLen = 100
	passwordMinLen  = 8
)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < usernameMinLen || n > usernameMaxLen {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type FirstName struct {
	value string
}

func NewFirstName(s string) (FirstName, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < 1 || n > firstNameMaxLen {
		return FirstName{}, ErrInvalidFirstName
	}
	return FirstName{value: s}, nil
}

func (f FirstName) Value() string {
	return f.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < passwordMinLen {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
