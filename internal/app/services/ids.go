package services

import (
	"fmt"
	"sync"
	"time"
)

// idSequence issues <prefix><unix-ms> ids, bumping past the previous id when
// two records are created in the same millisecond.
type idSequence struct {
	mu   sync.Mutex
	last int64
}

func (s *idSequence) next(prefix string, now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms := now.UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return fmt.Sprintf("%s%d", prefix, ms)
}
