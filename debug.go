package plexus

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when the field is in debug mode.
type debugStats struct {
	simulateTime  time.Duration
	connectTime   time.Duration
	particleCount int
	lineCount     int
}

// debugLog prints timing and draw stats to stderr.
func (f *Field) debugLog(stats debugStats) {
	if !f.debug {
		return
	}
	total := stats.simulateTime + stats.connectTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[plexus] simulate: %v | connect: %v | total: %v\n",
		stats.simulateTime, stats.connectTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[plexus] particles: %d | lines: %d\n",
		stats.particleCount, stats.lineCount)
}

// debugMaxParticles is the population above which the pairwise connect pass
// starts to dominate a 60 Hz frame budget.
const debugMaxParticles = 1500

// debugCheckParticleCount warns on stderr if a freshly initialized field is
// large enough to make connect expensive.
func debugCheckParticleCount(n int) {
	if n > debugMaxParticles {
		_, _ = fmt.Fprintf(os.Stderr, "[plexus] warning: %d particles exceeds %d (%d pair checks per frame)\n",
			n, debugMaxParticles, n*(n-1)/2)
	}
}

// debugLogInit reports a (re)initialization.
func debugLogInit(ev FieldEvent) {
	_, _ = fmt.Fprintf(os.Stderr, "[plexus] %s: %.0fx%.0f -> %d particles\n",
		ev.Type, ev.Width, ev.Height, ev.Particles)
}
