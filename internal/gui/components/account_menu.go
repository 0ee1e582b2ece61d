package components

import (
	"login-test/internal/view"

	"fyne.io/fyne/v2"
)

// NewAccountMenu builds the top menu bar: a disabled item carrying the
// username, a separator, and the logout action.
func NewAccountMenu(desc *view.AccountMenu, onLogout func()) *fyne.MainMenu {
	userItem := fyne.NewMenuItem(desc.Username, nil)
	userItem.Disabled = true

	logoutItem := fyne.NewMenuItem(desc.LogoutLabel, func() {
		if onLogout != nil {
			onLogout()
		}
	})

	return fyne.NewMainMenu(
		fyne.NewMenu(desc.Title, userItem, fyne.NewMenuItemSeparator(), logoutItem),
	)
}
