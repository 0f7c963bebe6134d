//go:build unit

package commands_test

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"hotel-booking/internal/pkg/clock"
)

var fixedNow = time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC)

func date(month time.Month, day int) time.Time {
	return time.Date(2030, month, day, 0, 0, 0, 0, time.UTC)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClock() *clock.MockClock {
	return clock.NewMockClock(fixedNow)
}

// seqTxIDs hands out the scripted ids first, then unique sequential ones.
type seqTxIDs struct {
	mu       sync.Mutex
	scripted []string
	n        int
}

func (g *seqTxIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.scripted) > 0 {
		id := g.scripted[0]
		g.scripted = g.scripted[1:]
		return id
	}
	g.n++
	return fmt.Sprintf("TXN-TEST-%04d", g.n)
}
