package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a collision-resistant note identifier: a base-36
// millisecond timestamp prefix followed by a random suffix. No global
// counter, no coordination; uniqueness within a process lifetime is
// overwhelmingly probable.
func NewID() string {
	prefix := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return prefix + "-" + suffix
}
