// Package view derives a declarative description of the visible UI from
// session state. It knows nothing about the toolkit that draws it.
package view

import "login-test/internal/session"

const (
	WindowTitle = "Login Test"

	AccountMenuTitle = "Account"
	LogoutLabel      = "Log out"

	LoginHeading   = "Login"
	UsernameLabel  = "Username: "
	PasswordLabel  = "Password: "
	LoginButton    = "Login"
	AccountHeading = "Account Info"
	HashLabel      = "Password Hash: "
)

// Source is the read side of session.State.
type Source interface {
	CurrentAccount() (session.Account, bool)
	Form() session.Form
}

// Screen is everything visible in one render. Exactly one of Login and
// Account is set; Menu is set iff Account is.
type Screen struct {
	Menu    *AccountMenu
	Login   *LoginWindow
	Account *AccountWindow
}

type AccountMenu struct {
	Title       string
	Username    string
	LogoutLabel string
}

type LoginWindow struct {
	Heading       string
	UsernameLabel string
	PasswordLabel string
	ButtonLabel   string
	Username      string
	Password      string
}

type AccountWindow struct {
	Heading       string
	UsernameLabel string
	HashLabel     string
	Username      string
	PasswordHash  string
}

// Describe is pure: the same state always yields the same Screen.
func Describe(src Source) Screen {
	acc, ok := src.CurrentAccount()
	if !ok {
		form := src.Form()
		return Screen{
			Login: &LoginWindow{
				Heading:       LoginHeading,
				UsernameLabel: UsernameLabel,
				PasswordLabel: PasswordLabel,
				ButtonLabel:   LoginButton,
				Username:      form.Username,
				Password:      form.Password,
			},
		}
	}

	return Screen{
		Menu: &AccountMenu{
			Title:       AccountMenuTitle,
			Username:    acc.Username,
			LogoutLabel: LogoutLabel,
		},
		Account: &AccountWindow{
			Heading:       AccountHeading,
			UsernameLabel: UsernameLabel,
			HashLabel:     HashLabel,
			Username:      acc.Username,
			PasswordHash:  acc.PasswordHash,
		},
	}
}

// LoggedIn reports whether the screen shows the account views.
func (s Screen) LoggedIn() bool {
	return s.Account != nil
}
