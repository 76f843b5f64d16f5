package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// NewSeed draws a seed from the operating system's entropy source.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// NewRand returns a reward RNG. A zero seed means a random one.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = NewSeed()
	}
	return rand.New(rand.NewSource(seed))
}
