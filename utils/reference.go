package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Reference prefixes for the different record families.
const (
	RefPrefixTransfer    = "P2P"
	RefPrefixTransaction = "TXN"
	RefPrefixRequest     = "REQ"
)

// NewReference produces a short human-legible reference id such as
// "P2P4F2A9C81B30D". The 12-character suffix is drawn from a random UUID,
// uniqueness is enforced by the unique indexes on the reference columns.
func NewReference(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s%s", prefix, strings.ToUpper(raw[:12]))
}
