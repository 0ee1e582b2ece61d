package components

import (
	"login-test/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// AccountInfo is the card shown while logged in.
type AccountInfo struct {
	container    *fyne.Container
	usernameText *widget.RichText
	hashText     *widget.RichText
}

func NewAccountInfo(desc *view.AccountWindow) *AccountInfo {
	info := &AccountInfo{
		usernameText: monospace(desc.Username),
		hashText:     monospace(desc.PasswordHash),
	}

	content := container.NewVBox(
		heading(desc.Heading),
		labelledRow(desc.UsernameLabel, info.usernameText),
		labelledRow(desc.HashLabel, info.hashText),
	)

	info.container = container.NewVBox(widget.NewCard("", "", content))
	return info
}

func (ai *AccountInfo) GetContainer() *fyne.Container {
	return ai.container
}

func (ai *AccountInfo) Username() string {
	return ai.usernameText.String()
}

func (ai *AccountInfo) PasswordHash() string {
	return ai.hashText.String()
}

// monospace renders small wrapped monospace text; a hash has no spaces so
// it has to break mid-word.
func monospace(text string) *widget.RichText {
	rt := widget.NewRichText(&widget.TextSegment{
		Text: text,
		Style: widget.RichTextStyle{
			ColorName: theme.ColorNameForeground,
			SizeName:  theme.SizeNameCaptionText,
			TextStyle: fyne.TextStyle{Monospace: true},
		},
	})
	rt.Wrapping = fyne.TextWrapBreak
	return rt
}
