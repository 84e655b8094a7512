// Package seed turns generation inputs into reproducible random streams.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"AstroSentinel/internal/model"
)

// pcgStream is the fixed PCG increment; the seed only varies the state word.
const pcgStream = 0x9e3779b97f4a7c15

// Canonical renders the string that Derive hashes.
func Canonical(in model.SeedInput) string {
	return in.Symbol + "|" + in.DateString() + "|" + in.Timeframe.String()
}

// Derive hashes the canonical triple with SHA-256 and keeps the first 8 bytes.
func Derive(in model.SeedInput) uint64 {
	return hash(Canonical(in))
}

// ForTransits derives the seed used for a reference date's transit table.
func ForTransits(ref time.Time) uint64 {
	return hash("transits|" + model.CalendarDay(ref).Format(model.DateLayout))
}

// NewRand builds a call-scoped generator. Callers must not share it across goroutines.
func NewRand(s uint64) *rand.Rand {
	return rand.New(rand.NewPCG(s, pcgStream))
}

func hash(s string) uint64 {
	sum := sha256.Sum256([]byte(s))
	return binary.BigEndian.Uint64(sum[:8])
}
