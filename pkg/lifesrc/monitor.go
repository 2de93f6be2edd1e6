package lifesrc

import (
	"sync/atomic"
	"time"
)

// SearchStats is a point-in-time snapshot of a SearchMonitor's counters.
// Grounded on the teacher's fd_monitor.go SolverStats: the same shape of
// lock-free, atomically-updated search/propagation counters, renamed for
// this engine's decision/backjump/conflict vocabulary.
type SearchStats struct {
	NodesExplored    int64
	Backtracks       int64
	Backjumps        int64
	Conflicts        int64
	PropagationCount int64
	PropagationTime  time.Duration
	PeakStackDepth   int64
	MaxDecisionLevel int64
}

// SearchMonitor collects search statistics using atomic operations so a
// caller may safely poll them from another goroutine while a search runs
// in its own goroutine. The engine itself remains single-threaded per
// cell (spec's concurrency model); this is read-only cross-goroutine
// visibility, not concurrent search.
//
// All methods are safe to call on a nil *SearchMonitor, so World can
// carry one unconditionally without every call site needing a nil check
// (mirrors fd_monitor.go's nil-receiver convention).
type SearchMonitor struct {
	nodesExplored    atomic.Int64
	backtracks       atomic.Int64
	backjumps        atomic.Int64
	conflicts        atomic.Int64
	propagationCount atomic.Int64
	propagationNanos atomic.Int64
	peakStackDepth   atomic.Int64
	maxDecisionLevel atomic.Int64

	propStart atomic.Int64
}

// NewSearchMonitor returns a ready-to-use, zeroed SearchMonitor.
func NewSearchMonitor() *SearchMonitor {
	return &SearchMonitor{}
}

func (m *SearchMonitor) recordDecision(level int) {
	if m == nil {
		return
	}
	m.nodesExplored.Add(1)
	for {
		cur := m.maxDecisionLevel.Load()
		if int64(level) <= cur || m.maxDecisionLevel.CompareAndSwap(cur, int64(level)) {
			break
		}
	}
}

func (m *SearchMonitor) recordBacktrack() {
	if m == nil {
		return
	}
	m.backtracks.Add(1)
}

func (m *SearchMonitor) recordBackjump() {
	if m == nil {
		return
	}
	m.backjumps.Add(1)
}

func (m *SearchMonitor) recordConflict() {
	if m == nil {
		return
	}
	m.conflicts.Add(1)
}

func (m *SearchMonitor) recordStackDepth(depth int) {
	if m == nil {
		return
	}
	for {
		cur := m.peakStackDepth.Load()
		if int64(depth) <= cur || m.peakStackDepth.CompareAndSwap(cur, int64(depth)) {
			break
		}
	}
}

func (m *SearchMonitor) startPropagation() {
	if m == nil {
		return
	}
	m.propStart.Store(time.Now().UnixNano())
}

func (m *SearchMonitor) endPropagation() {
	if m == nil {
		return
	}
	start := m.propStart.Load()
	if start == 0 {
		return
	}
	m.propagationNanos.Add(time.Now().UnixNano() - start)
	m.propagationCount.Add(1)
	m.propStart.Store(0)
}

// Stats returns a consistent snapshot of m's counters. Returns the zero
// value if m is nil.
func (m *SearchMonitor) Stats() SearchStats {
	if m == nil {
		return SearchStats{}
	}
	return SearchStats{
		NodesExplored:    m.nodesExplored.Load(),
		Backtracks:       m.backtracks.Load(),
		Backjumps:        m.backjumps.Load(),
		Conflicts:        m.conflicts.Load(),
		PropagationCount: m.propagationCount.Load(),
		PropagationTime:  time.Duration(m.propagationNanos.Load()),
		PeakStackDepth:   m.peakStackDepth.Load(),
		MaxDecisionLevel: m.maxDecisionLevel.Load(),
	}
}
