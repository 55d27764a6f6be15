package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex shtx_01HQ3Z4B8M6J0D2V9T5XW7K1RC
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_SHIPPING_TRANSACTION = "shtx"
	UUID_PREFIX_EVENT                = "event"
	UUID_PREFIX_REQUEST              = "req"
	UUID_PREFIX_PLAN_SET             = "plset"
)
