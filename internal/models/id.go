package models

import (
	"fmt"
	"sync/atomic"
	"time"
)

var idSeq atomic.Uint64

// NewID generates a timestamp-based identifier like "prop_1724980000123456789_42".
// The sequence suffix keeps ids unique when two are generated in the same tick.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano(), idSeq.Add(1))
}
