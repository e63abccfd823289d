package types

import (
	"net/url"
	"strings"
)

const redactedPassword = "xxxxx"

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// SanitizeConnectionString redacts the password of a connection URI so it can be logged.
// Strings that do not parse as a URI are reduced to their scheme.
func SanitizeConnectionString(connStr string) string {
	if connStr == "" {
		return ""
	}

	parsed, err := url.Parse(connStr)
	if err != nil || parsed.Scheme == "" {
		parts := strings.SplitN(connStr, "://", 2)
		if len(parts) == 2 {
			return parts[0] + "://" + redactedPassword
		}
		return redactedPassword
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), redactedPassword)
		}
	}

	return parsed.String()
}
