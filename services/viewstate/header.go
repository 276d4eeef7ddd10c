package viewstate

import "homezy/i18n"

// Element ids making up the user menu.
const (
	MenuButtonID   = "user-menu-button"
	MenuPanelID    = "user-menu-panel"
	MenuLoginID    = "user-menu-login"
	MenuRegisterID = "user-menu-register"
)

// Header owns the page-level UI state: the user menu, the auth modal and the
// display language.
type Header struct {
	Menu     *Menu
	Modal    *AuthModal
	locale   *i18n.Localizer
	teardown func()
}

// NewHeader mounts the menu's outside-click listener on d. Call Close to
// release it.
func NewHeader(locale *i18n.Localizer, d *Dispatcher) *Header {
	menu := NewMenu(MenuButtonID, MenuPanelID, MenuLoginID, MenuRegisterID)
	return &Header{
		Menu:     menu,
		Modal:    NewAuthModal(),
		locale:   locale,
		teardown: menu.Mount(d),
	}
}

// OpenAuthModal shuts the menu and shows the modal on view.
func (h *Header) OpenAuthModal(view View) {
	h.Menu.Close()
	h.Modal.Open(view)
}

func (h *Header) ChangeLanguage(tag string) i18n.Locale {
	return h.locale.ChangeLanguage(tag)
}

func (h *Header) Language() i18n.Locale {
	return h.locale.Language()
}

// Close detaches the header from the page.
func (h *Header) Close() {
	h.teardown()
}
