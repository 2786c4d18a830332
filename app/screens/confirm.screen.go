package screens

import (
	"strings"

	"github.com/Blainegunn/generator-aem-component/app"
	"github.com/Blainegunn/generator-aem-component/app/utils"
	tea "github.com/charmbracelet/bubbletea"
)

// UpdateScreenConfirm records the answer to "does this look correct?" and
// ends the program either way.
func UpdateScreenConfirm(m app.Model, keyMsg tea.KeyMsg) (app.Model, tea.Cmd) {
	return updateYesNo(m, keyMsg, func(m *app.Model, yes bool) tea.Cmd {
		m.Confirmed = yes
		m.CurrentScreen = app.ScreenDone
		return tea.Quit
	})
}

// ViewConfirm shows the summary, the planned files and the final question.
func ViewConfirm(m app.Model) string {
	var b strings.Builder
	b.WriteString(header(m))
	b.WriteString(app.SubtitleStyle.Render(app.SummaryTitle) + "\n")
	for _, line := range m.Spec.Summary() {
		b.WriteString(app.LabelStyle.Render(line.Label+":") + app.ValueStyle.Render(line.Value) + "\n")
	}

	if len(m.PlannedFiles) > 0 {
		b.WriteString("\n" + app.PathStyle.Render("Files:") + "\n")
		b.WriteString(utils.RenderPlannedTree(m.PlannedFiles, nil))
	}

	b.WriteString("\n" + app.SubtitleStyle.Render(app.QuestionConfirm) + "\n")
	b.WriteString(renderYesNo(m.ChoiceIndex) + "\n")
	b.WriteString("\n" + app.HelpStyle.Render("←/→: choose • y/n • enter: submit • esc: quit"))
	return app.DocStyle.Render(b.String())
}
