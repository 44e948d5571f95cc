package engine

// DragSession tracks one in-progress reorder gesture: the index the user
// picked up and the index currently hovered. Unset indices are -1; both
// reset between sessions.
type DragSession struct {
	dragged int
	over    int
}

// NewDragSession returns an idle session.
func NewDragSession() *DragSession {
	return &DragSession{dragged: -1, over: -1}
}

// Active reports whether a drag is in progress.
func (s *DragSession) Active() bool { return s.dragged >= 0 }

// Dragged returns the picked-up index, or -1.
func (s *DragSession) Dragged() int { return s.dragged }

// Over returns the current hover target, or -1.
func (s *DragSession) Over() int { return s.over }

// Start records the source index and clears any stale target.
func (s *DragSession) Start(index int) {
	s.dragged = index
	s.over = -1
}

// HoverOver updates the hover target. Re-hovering the current target is
// ignored; hovering back over the source snaps the target to unset.
func (s *DragSession) HoverOver(index int) {
	if !s.Active() || index == s.over {
		return
	}
	if index == s.dragged {
		s.over = -1
		return
	}
	s.over = index
}

// Drop ends the session. It reports (from, to, true) exactly when both
// indices were set and distinct; otherwise the gesture counts as cancelled
// and ok is false. Either way the session resets.
func (s *DragSession) Drop() (from, to int, ok bool) {
	from, to = s.dragged, s.over
	ok = from >= 0 && to >= 0 && from != to
	s.dragged, s.over = -1, -1
	return from, to, ok
}

// Cancel abandons the session without reporting a move.
func (s *DragSession) Cancel() {
	s.dragged, s.over = -1, -1
}
