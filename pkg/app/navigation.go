package app

// CycleFocusForward moves focus to the next widget, wrapping after the
// last.
func (m *AppModel) CycleFocusForward() {
	if len(m.widgetOrder) == 0 {
		return
	}
	idx := (m.focusedIndex() + 1) % len(m.widgetOrder)
	m.setFocus(m.widgetOrder[idx])
}

// CycleFocusBackward moves focus to the previous widget, wrapping before
// the first.
func (m *AppModel) CycleFocusBackward() {
	if len(m.widgetOrder) == 0 {
		return
	}
	idx := (m.focusedIndex() - 1 + len(m.widgetOrder)) % len(m.widgetOrder)
	m.setFocus(m.widgetOrder[idx])
}

// FocusWidget sets focus to the widget with the given ID. Unknown IDs are
// ignored.
func (m *AppModel) FocusWidget(id string) {
	if _, ok := m.widgets[id]; ok {
		m.setFocus(id)
	}
}

// ToggleExpand shows the focused page panel alone, or returns to the full
// page. The console is never expanded.
func (m *AppModel) ToggleExpand() {
	if m.focusedWidget == "" || m.focusedWidget == ConsoleID {
		if m.expandedWidget != "" {
			m.expandedWidget = ""
		}
		return
	}
	if m.expandedWidget == m.focusedWidget {
		m.expandedWidget = ""
	} else {
		m.expandedWidget = m.focusedWidget
	}
	m.page.GotoTop()
}

func (m *AppModel) setFocus(id string) {
	if id == m.focusedWidget {
		return
	}
	if f, ok := m.widgets[m.focusedWidget].(Focusable); ok {
		f.Blur()
	}
	m.focusedWidget = id
	if f, ok := m.widgets[id].(Focusable); ok {
		m.pending = append(m.pending, f.Focus())
	}
	if m.expandedWidget != "" && id != ConsoleID {
		m.expandedWidget = id
	}
}

// focusedIndex returns the position of the focused widget in the order
// list, or 0.
func (m *AppModel) focusedIndex() int {
	for i, id := range m.widgetOrder {
		if id == m.focusedWidget {
			return i
		}
	}
	return 0
}
