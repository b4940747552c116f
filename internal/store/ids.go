package store

import (
	"strings"

	"github.com/google/uuid"
)

// NewCode returns an 8-character uppercase code. Used for order IDs and
// support reference numbers; unique for the process lifetime at any
// practical scale.
func NewCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
