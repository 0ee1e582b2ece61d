package components

import (
	"login-test/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LoginForm is the card shown while logged out.
type LoginForm struct {
	container     *fyne.Container
	UsernameEntry *widget.Entry
	PasswordEntry *widget.Entry
	LoginButton   *widget.Button

	usernameChangeHandler func(string)
	passwordChangeHandler func(string)
	submitHandler         func()
}

func NewLoginForm(desc *view.LoginWindow) *LoginForm {
	form := &LoginForm{}
	form.setupControls(desc)
	return form
}

func (lf *LoginForm) setupControls(desc *view.LoginWindow) {
	// Text is set before OnChanged so rendering never echoes back into state.
	lf.UsernameEntry = widget.NewEntry()
	lf.UsernameEntry.SetText(desc.Username)
	lf.UsernameEntry.OnChanged = lf.onUsernameChanged

	lf.PasswordEntry = widget.NewPasswordEntry()
	lf.PasswordEntry.SetText(desc.Password)
	lf.PasswordEntry.OnChanged = lf.onPasswordChanged
	lf.PasswordEntry.OnSubmitted = func(string) { lf.onSubmit() }

	lf.LoginButton = widget.NewButton(desc.ButtonLabel, lf.onSubmit)
	lf.LoginButton.Importance = widget.HighImportance

	content := container.NewVBox(
		heading(desc.Heading),
		labelledRow(desc.UsernameLabel, lf.UsernameEntry),
		labelledRow(desc.PasswordLabel, lf.PasswordEntry),
		container.NewHBox(lf.LoginButton),
	)

	lf.container = container.NewVBox(widget.NewCard("", "", content))
}

func (lf *LoginForm) GetContainer() *fyne.Container {
	return lf.container
}

func (lf *LoginForm) SetUsernameChangeHandler(handler func(string)) {
	lf.usernameChangeHandler = handler
}

func (lf *LoginForm) SetPasswordChangeHandler(handler func(string)) {
	lf.passwordChangeHandler = handler
}

func (lf *LoginForm) SetSubmitHandler(handler func()) {
	lf.submitHandler = handler
}

func (lf *LoginForm) onUsernameChanged(value string) {
	if lf.usernameChangeHandler != nil {
		lf.usernameChangeHandler(value)
	}
}

func (lf *LoginForm) onPasswordChanged(value string) {
	if lf.passwordChangeHandler != nil {
		lf.passwordChangeHandler(value)
	}
}

func (lf *LoginForm) onSubmit() {
	if lf.submitHandler != nil {
		lf.submitHandler()
	}
}
