package main

import (
	"time"

	"github.com/google/uuid"
)

// ActionLog is a single linear timeline of actions plus a cursor. Actions
// in [0, current] are applied; anything after current is the redo branch
// and is dropped by the next Append.
type ActionLog struct {
	actions    []Action
	current    int
	generation int
	now        func() time.Time
	newID      func() string
}

func NewActionLog() *ActionLog {
	return &ActionLog{
		current: -1,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Append records payload as a new action at the cursor and returns it.
// Validation is the caller's job.
func (l *ActionLog) Append(payload Payload, meta Metadata) Action {
	action := Action{
		ID:        l.newID(),
		Kind:      payload.Kind(),
		Payload:   payload,
		Timestamp: l.now(),
		Metadata:  meta,
	}

	if l.current < len(l.actions)-1 {
		// Clear the tail so dropped payloads can be collected.
		for i := l.current + 1; i < len(l.actions); i++ {
			l.actions[i] = Action{}
		}
		l.actions = l.actions[:l.current+1]
		l.generation++
	}

	l.actions = append(l.actions, action)
	l.current = len(l.actions) - 1
	return action
}

func (l *ActionLog) Undo() {
	if l.current < 0 {
		return
	}
	l.current--
}

func (l *ActionLog) Redo() {
	if l.current >= len(l.actions)-1 {
		return
	}
	l.current++
}

func (l *ActionLog) CanUndo() bool {
	return l.current >= 0
}

func (l *ActionLog) CanRedo() bool {
	return l.current < len(l.actions)-1
}

// CurrentIndex is the cursor, -1 when nothing is applied.
func (l *ActionLog) CurrentIndex() int {
	return l.current
}

func (l *ActionLog) Len() int {
	return len(l.actions)
}

// Generation changes every time a redo branch is discarded, so cached
// projections can tell that an index now names a different action.
func (l *ActionLog) Generation() int {
	return l.generation
}

// Actions returns a copy of the whole log, redo branch included.
func (l *ActionLog) Actions() []Action {
	out := make([]Action, len(l.actions))
	copy(out, l.actions)
	return out
}

// Applied returns a copy of the actions up to and including the cursor.
func (l *ActionLog) Applied() []Action {
	out := make([]Action, l.current+1)
	copy(out, l.actions[:l.current+1])
	return out
}

// At returns the action at index i without copying the log.
func (l *ActionLog) At(i int) (Action, bool) {
	if i < 0 || i >= len(l.actions) {
		return Action{}, false
	}
	return l.actions[i], true
}

// Stats returns the 1-based cursor position and the log length for display.
func (l *ActionLog) Stats() (current, total int) {
	return l.current + 1, len(l.actions)
}
