package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewReferenceCode returns a short human-quotable booking reference, e.g. RES-9F2C41AB.
// Uniqueness is ultimately enforced by the database index on the column.
func NewReferenceCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "RES-" + strings.ToUpper(raw[:8])
}
