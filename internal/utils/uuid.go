package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID generates a new UUID string
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateIDWithPrefix returns prefix-<uuid without dashes>
func GenerateIDWithPrefix(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// IsUUID reports whether s parses as a UUID
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
