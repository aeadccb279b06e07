package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen caps stored labels in bytes; a ULID fits
const MaxStringLen = 32

// AtomicString holds a short label such as the last zap name or firing id
// The zero value reads as ""
type AtomicString struct {
	v atomic.Value
}

// Store saves val, cut back to a rune boundary at MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.v.Store(val)
}

func (s *AtomicString) Load() string {
	if v, ok := s.v.Load().(string); ok {
		return v
	}
	return ""
}
