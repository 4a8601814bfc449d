package user

import (
	"os"
	"os/user"
	"strings"
)

// Me is the assignee placeholder that stands for the current user
const Me = "@me"

// GetCurrentUsername returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func GetCurrentUsername() string {
	currentUser, err := user.Current()
	if err != nil || currentUser.Username == "" {
		if username := os.Getenv("USER"); username != "" {
			return username
		}
		return "unknown"
	}
	return currentUser.Username
}

// ResolveAssignee expands the @me placeholder; any other value is returned
// trimmed
func ResolveAssignee(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, Me) {
		return GetCurrentUsername()
	}
	return value
}
