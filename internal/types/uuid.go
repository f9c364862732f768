package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	UUID_PREFIX_PRODUCT      = "prod"
	UUID_PREFIX_PRICE        = "price"
	UUID_PREFIX_SUBSCRIPTION = "subs"
	UUID_PREFIX_CATEGORY     = "cat"
	UUID_PREFIX_WEBHOOK      = "wh"
)

// GenerateUUID returns a bare lowercase v4 UUID without dashes.
func GenerateUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// GenerateUUIDWithPrefix returns an id of the form "<prefix>_<uuid>".
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
