package main

// Keyboard pointer: arrow keys move a cell cursor over the field and space
// presses or releases it, so the editor works without mouse reporting.

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "left", "shift+left":
		m.cursorX -= speed
	case "right", "shift+right":
		m.cursorX += speed
	case "up", "shift+up":
		m.cursorY -= speed
	case "down", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()

	if m.keyboardPressed {
		m.session.Controller.PointerMove(m.cursorEvent())
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "shift+left", "shift+right", "shift+up", "shift+down":
		return 4
	default:
		return 1
	}
}

func (m *model) toggleKeyboardPointer() {
	ev := m.cursorEvent()
	if m.keyboardPressed {
		m.keyboardPressed = false
		m.session.Controller.PointerUp(ev)
		return
	}
	m.session.Controller.PointerDown(ev)
	// Only gestures that continue need a release.
	m.keyboardPressed = m.session.Controller.State() != StateIdle
}

func (m *model) cursorEvent() PointerEvent {
	return PointerEvent{Point: m.surface().PointAt(m.cursorX, m.cursorY)}
}

func (m *model) ensureCursorInBounds() {
	s := m.surface()
	m.cursorX = clampInt(m.cursorX, 0, s.cols-1)
	m.cursorY = clampInt(m.cursorY, 0, s.rows-1)
}
