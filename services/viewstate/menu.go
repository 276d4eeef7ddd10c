package viewstate

import "sync"

// Menu is the header's user menu. It closes on any pointer-down outside its
// region once mounted.
type Menu struct {
	mu     sync.Mutex
	open   bool
	region map[string]struct{}
}

// NewMenu builds a menu whose region is the given element ids.
func NewMenu(region ...string) *Menu {
	m := &Menu{region: make(map[string]struct{}, len(region))}
	for _, id := range region {
		m.region[id] = struct{}{}
	}
	return m
}

func (m *Menu) Open() {
	m.mu.Lock()
	m.open = true
	m.mu.Unlock()
}

func (m *Menu) Close() {
	m.mu.Lock()
	m.open = false
	m.mu.Unlock()
}

func (m *Menu) Toggle() {
	m.mu.Lock()
	m.open = !m.open
	m.mu.Unlock()
}

func (m *Menu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Contains reports whether target is inside the menu.
func (m *Menu) Contains(target string) bool {
	_, ok := m.region[target]
	return ok
}

// Mount attaches the outside-click listener and returns its teardown.
func (m *Menu) Mount(d *Dispatcher) (teardown func()) {
	return d.Subscribe(func(ev PointerEvent) {
		if !m.Contains(ev.Target) {
			m.Close()
		}
	})
}
