package screens

import (
	"strings"

	"github.com/Blainegunn/generator-aem-component/app"
	"github.com/Blainegunn/generator-aem-component/app/component"
	tea "github.com/charmbracelet/bubbletea"
)

// UpdateScreenStyles handles "include styles?". Yes is preselected.
func UpdateScreenStyles(m app.Model, keyMsg tea.KeyMsg) (app.Model, tea.Cmd) {
	return updateYesNo(m, keyMsg, func(m *app.Model, yes bool) tea.Cmd {
		m.IncludeStyles = yes
		m.ChoiceIndex = app.ChoiceYes
		m.CurrentScreen = app.ScreenScript
		return nil
	})
}

// UpdateScreenScript handles "include javascript?" and derives the component for
// the confirm screen, where No is preselected.
func UpdateScreenScript(m app.Model, keyMsg tea.KeyMsg) (app.Model, tea.Cmd) {
	return updateYesNo(m, keyMsg, func(m *app.Model, yes bool) tea.Cmd {
		m.IncludeScript = yes
		m.Spec = component.Derive(component.Input{
			CamelName:     m.CamelName,
			DashedName:    m.DashedName,
			IncludeStyles: m.IncludeStyles,
			IncludeScript: m.IncludeScript,
		})
		m.PlannedFiles = nil
		m.ChoiceIndex = app.ChoiceNo
		m.CurrentScreen = app.ScreenConfirm
		return nil
	})
}

// updateYesNo moves the highlight between Yes and No. Enter submits the
// highlighted choice; y and n submit directly.
func updateYesNo(m app.Model, keyMsg tea.KeyMsg, submit func(*app.Model, bool) tea.Cmd) (app.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return cancel(m)
	case "up", "k", "left", "h":
		m.ChoiceIndex = app.ChoiceYes
	case "down", "j", "right", "l":
		m.ChoiceIndex = app.ChoiceNo
	case "tab":
		m.ChoiceIndex = 1 - m.ChoiceIndex
	case "y", "Y":
		m.ChoiceIndex = app.ChoiceYes
		cmd := submit(&m, true)
		return m, cmd
	case "n", "N":
		m.ChoiceIndex = app.ChoiceNo
		cmd := submit(&m, false)
		return m, cmd
	case "enter":
		cmd := submit(&m, m.ChoiceIndex == app.ChoiceYes)
		return m, cmd
	}
	return m, nil
}

// ViewChoice renders the styles or script question.
func ViewChoice(m app.Model) string {
	question := app.QuestionStyles
	if m.CurrentScreen == app.ScreenScript {
		question = app.QuestionScript
	}

	var b strings.Builder
	b.WriteString(header(m))
	b.WriteString(answered(m))
	b.WriteString(app.SubtitleStyle.Render(question) + "\n")
	b.WriteString(renderYesNo(m.ChoiceIndex) + "\n")
	b.WriteString("\n" + app.HelpStyle.Render("←/→: choose • y/n • enter: submit • esc: quit"))
	return app.DocStyle.Render(b.String())
}
