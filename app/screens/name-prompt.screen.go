package screens

import (
	"strings"

	"github.com/Blainegunn/generator-aem-component/app"
	"github.com/Blainegunn/generator-aem-component/app/component"
	tea "github.com/charmbracelet/bubbletea"
)

// UpdateScreenCamelName handles the first question. An invalid name keeps the
// screen open with the validation message shown under the input.
func UpdateScreenCamelName(m app.Model, keyMsg tea.KeyMsg) (app.Model, tea.Cmd) {
	return updateNamePrompt(m, keyMsg, component.ValidateCamelName, func(m *app.Model, name string) {
		m.CamelName = name
		m.NameInput.Placeholder = "my-component"
		m.CurrentScreen = app.ScreenDashedName
	})
}

// UpdateScreenDashedName handles the dashed name and moves on to the yes/no questions.
func UpdateScreenDashedName(m app.Model, keyMsg tea.KeyMsg) (app.Model, tea.Cmd) {
	return updateNamePrompt(m, keyMsg, component.ValidateDashedName, func(m *app.Model, name string) {
		m.DashedName = name
		m.NameInput.Blur()
		m.ChoiceIndex = app.ChoiceYes
		m.CurrentScreen = app.ScreenStyles
	})
}

func updateNamePrompt(m app.Model, keyMsg tea.KeyMsg, validate func(string) error, accept func(*app.Model, string)) (app.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return cancel(m)
	case "enter":
		name := m.NameInput.Value()
		if err := validate(name); err != nil {
			m.ErrMsg = err.Error()
			return m, nil
		}
		m.ErrMsg = ""
		m.NameInput.Reset()
		accept(&m, name)
		return m, nil
	}

	var cmd tea.Cmd
	m.NameInput, cmd = m.NameInput.Update(keyMsg)
	return m, cmd
}

// ViewNamePrompt renders either name question with the text input.
func ViewNamePrompt(m app.Model) string {
	question := app.QuestionCamelName
	if m.CurrentScreen == app.ScreenDashedName {
		question = app.QuestionDashedName
	}

	var b strings.Builder
	b.WriteString(header(m))
	b.WriteString(answered(m))
	b.WriteString(app.SubtitleStyle.Render(question) + "\n")
	b.WriteString(m.NameInput.View() + "\n")
	if m.ErrMsg != "" {
		b.WriteString(app.ErrorStyle.Render(">> "+m.ErrMsg) + "\n")
	}
	b.WriteString("\n" + app.HelpStyle.Render("enter: submit • esc: quit"))
	return app.DocStyle.Render(b.String())
}
