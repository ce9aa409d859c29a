// Package handid generates hand identifiers: UUIDv7 values encoded as 26
// lowercase Crockford base32 characters. Identifiers from one generator
// sort in creation order, including those created within one millisecond.
package handid

import (
	"encoding/base32"
	"fmt"
	rand "math/rand/v2"
	"sync"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// Length is the number of characters in an encoded identifier.
const Length = 26

// Crockford's base32, in ascending byte order so encoded IDs keep the
// ordering of the underlying UUIDs.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator produces identifiers from an injected random source and clock,
// so a seeded generator on a mock clock is fully reproducible.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	clock quartz.Clock

	lastMS int64
	seq    uint16 // 12-bit counter within lastMS
}

// New creates a generator. A nil clock uses the wall clock.
func New(rng *rand.Rand, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{rng: rng, clock: clock}
}

// Generate returns a new identifier. IDs minted in the same millisecond
// carry an increasing counter in place of the version's random bits; when
// the counter runs out, or the clock steps back, the timestamp is borrowed
// from the next millisecond.
func (g *Generator) Generate() string {
	g.mu.Lock()
	ms := g.clock.Now().UnixMilli()
	if ms <= g.lastMS {
		ms = g.lastMS
		g.seq++
		if g.seq > 0xfff {
			ms++
			g.seq = 0
		}
	} else {
		// Start low so a busy millisecond rarely overflows.
		g.seq = uint16(g.rng.Uint32() & 0x7ff)
	}
	g.lastMS = ms
	seq := g.seq
	lo := g.rng.Uint64()
	g.mu.Unlock()

	var u uuid.UUID
	for i := 0; i < 6; i++ {
		u[i] = byte(ms >> (40 - 8*i))
	}
	u[6] = 0x70 | byte(seq>>8) // version 7
	u[7] = byte(seq)
	for i := 0; i < 8; i++ {
		u[8+i] = byte(lo >> (8 * i))
	}
	u[8] = (u[8] & 0x3f) | 0x80 // RFC 4122 variant

	return encoding.EncodeToString(u[:])
}

// Parse decodes an identifier back into its UUID.
func Parse(id string) (uuid.UUID, error) {
	if len(id) != Length {
		return uuid.Nil, fmt.Errorf("hand ID must be exactly %d characters, got %d", Length, len(id))
	}
	b, err := encoding.DecodeString(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid hand ID %q: %w", id, err)
	}
	u, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.Nil, err
	}
	if u.Version() != 7 {
		return uuid.Nil, fmt.Errorf("hand ID %q is not a version 7 UUID", id)
	}
	return u, nil
}

// Validate checks that id was produced by a Generator.
func Validate(id string) error {
	_, err := Parse(id)
	return err
}
