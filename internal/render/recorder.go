package render

import (
	"sync"

	"github.com/katalvlaran/percolate/percolation"
)

// Recorder is a simulation observer that keeps the snapshot of the most
// recent trial at the moment it percolated. Snapshots are taken only on
// the percolating open, so observing costs O(α) per open.
type Recorder struct {
	mu    sync.Mutex
	trial int
	snap  [][]percolation.SiteState
}

// Observe implements simulation.Observer.
func (r *Recorder) Observe(trial int, g *percolation.Grid) {
	if !g.Percolates() {
		return
	}
	snap := g.Snapshot()
	r.mu.Lock()
	r.trial, r.snap = trial, snap
	r.mu.Unlock()
}

// Last returns the recorded trial index and snapshot; ok is false if no
// trial has percolated yet.
func (r *Recorder) Last() (trial int, snap [][]percolation.SiteState, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trial, r.snap, r.snap != nil
}
