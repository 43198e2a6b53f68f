// Package user resolves who is at the keyboard when no user is given.
package user

import (
	"os"
	"os/user"
	"strings"
)

// GetCurrentUsername returns the OS account name, then $USER, then "".
func GetCurrentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// DefaultID returns the user ID login falls back to: the OS account name,
// without any DOMAIN\ prefix, lowercased. Empty when it cannot be found.
func DefaultID() string {
	name := GetCurrentUsername()
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(strings.TrimSpace(name))
}
