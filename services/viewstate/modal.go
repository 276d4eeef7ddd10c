// Package viewstate tracks the header's side menu and the authentication
// modal.
package viewstate

import "sync"

type View string

const (
	ViewLogin    View = "login"
	ViewRegister View = "register"
)

// Other returns the view a toggle switches to.
func (v View) Other() View {
	if v == ViewRegister {
		return ViewLogin
	}
	return ViewRegister
}

func (v View) valid() bool { return v == ViewLogin || v == ViewRegister }

// ModalState is a snapshot of the auth modal.
type ModalState struct {
	IsOpen     bool `json:"isOpen"`
	ActiveView View `json:"activeView"`
}

// AuthModal holds the login/register modal. Every closed→open transition
// resets the active view to the view passed to Open.
type AuthModal struct {
	mu      sync.Mutex
	open    bool
	view    View
	initial View
}

func NewAuthModal() *AuthModal {
	return &AuthModal{view: ViewLogin, initial: ViewLogin}
}

// Open shows the modal on initial. Opening an already open modal with a
// different initial view also switches to it.
func (m *AuthModal) Open(initial View) {
	if !initial.valid() {
		initial = ViewLogin
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open || initial != m.initial {
		m.view = initial
	}
	m.initial = initial
	m.open = true
}

// Toggle swaps login and register. No-op while closed.
func (m *AuthModal) Toggle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return
	}
	m.view = m.view.Other()
}

func (m *AuthModal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
}

func (m *AuthModal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ModalState{IsOpen: m.open, ActiveView: m.view}
}
