package sysinfo

import (
	"os"
	"os/user"

	"bannerfetch/inject"
)

// User is the name of the user running the program.
type User struct {
	Name string
}

// NewUser resolves the user from USER, then USERNAME, then the account
// database.
func NewUser() *User {
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return &User{Name: v}
		}
	}
	if u, err := user.Current(); err == nil {
		return &User{Name: u.Username}
	}
	return &User{}
}

func (u *User) Prepare() error { return nil }

func (u *User) Publish(c *inject.Context) error {
	return c.Set("user", u.Name)
}
