package sim

// SeekerState is the seeker's part of a snapshot.
type SeekerState struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  int     `json:"size"`
	Speed int     `json:"speed"`
}

// ItemState is one item in a snapshot.
type ItemState struct {
	X        int  `json:"x"`
	Y        int  `json:"y"`
	Size     int  `json:"size"`
	Consumed bool `json:"consumed"`
}

// Snapshot is an immutable copy of the world, safe to hand to other goroutines.
type Snapshot struct {
	Tick   uint64      `json:"tick"`
	ArenaW int         `json:"arena_w"`
	ArenaH int         `json:"arena_h"`
	Seeker SeekerState `json:"seeker"`
	Items  []ItemState `json:"items"`
	Target int         `json:"target"` // item the next tick will chase, -1 if none
	Phase  string      `json:"phase"`
	Stats  Stats       `json:"stats"`
}

// Snapshot copies the current state under the world lock.
func (w *World) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]ItemState, len(w.items))
	for i, it := range w.items {
		items[i] = ItemState{
			X:        it.X(),
			Y:        it.Y(),
			Size:     it.Size(),
			Consumed: it.Consumed(),
		}
	}

	target := w.seeker.FindNearest(w.items)
	pos := w.seeker.Pos()

	return Snapshot{
		Tick:   w.tick,
		ArenaW: w.arena.W,
		ArenaH: w.arena.H,
		Seeker: SeekerState{
			X:     pos.X,
			Y:     pos.Y,
			Size:  w.seeker.Size(),
			Speed: w.seeker.Speed(),
		},
		Items:  items,
		Target: w.indexOf(target),
		Phase:  w.seeker.Phase(target).String(),
		Stats:  w.statsLocked(),
	}
}
