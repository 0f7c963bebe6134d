package txid

import (
	"fmt"
	"math/rand/v2"

	"hotel-booking/internal/pkg/clock"
)

// Generator produces the externally visible correlation key shared by a
// booking and its payment.
type Generator interface {
	Next() string
}

type timeRandGenerator struct {
	clock clock.Clock
}

func NewGenerator(clk clock.Clock) Generator {
	return &timeRandGenerator{clock: clk}
}

// Next returns "TXN" followed by the current unix millis and a 3 digit suffix.
func (g *timeRandGenerator) Next() string {
	// #nosec G404 -- uniqueness is enforced by the database, not by the RNG
	return fmt.Sprintf("TXN%d%03d", g.clock.Now().UnixMilli(), rand.IntN(1000))
}
