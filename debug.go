package windowbirds

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats holds per-frame timing and entity metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	emitTime     time.Duration
	submitTime   time.Duration
	commandCount int
	birdCount    int
	visibleCount int
}

// debugOut is where debug stats are written.
var debugOut io.Writer = os.Stderr

// debugLog prints timing and entity stats.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.emitTime + stats.submitTime
	_, _ = fmt.Fprintf(debugOut,
		"[windowbirds] frame %d | time %02d:%02d:%02d | emit: %v | submit: %v | total: %v\n",
		s.frame, s.now.Hour, s.now.Minute, s.now.Second, stats.emitTime, stats.submitTime, total)
	_, _ = fmt.Fprintf(debugOut,
		"[windowbirds] birds: %d (%d in window) | commands: %d\n",
		stats.birdCount, stats.visibleCount, stats.commandCount)
}

// countVisible counts birds whose anchor point lies inside the window region.
func countVisible(birds []Bird, window Rect) int {
	n := 0
	for i := range birds {
		if window.Contains(birds[i].X, birds[i].Y) {
			n++
		}
	}
	return n
}
