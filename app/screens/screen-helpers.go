package screens

import (
	"fmt"

	"github.com/Blainegunn/generator-aem-component/app"
	tea "github.com/charmbracelet/bubbletea"
)

// cancel ends the program without confirmation. Collectors report it as a decline.
func cancel(m app.Model) (app.Model, tea.Cmd) {
	m.Cancelled = true
	m.Confirmed = false
	m.CurrentScreen = app.ScreenDone
	return m, tea.Quit
}

func header(m app.Model) string {
	out := app.TitleStyle.Render("AEM component generator") + "\n"
	if m.ProjectPath != "" {
		out += app.PathStyle.Render("Project: "+m.ProjectPath) + "\n"
	}
	return out + "\n"
}

// answered lists the answers given so far, one per line.
func answered(m app.Model) string {
	var out string
	if m.CamelName != "" {
		out += app.ChoiceStyle.Render(fmt.Sprintf("✔ component: %s", m.CamelName)) + "\n"
	}
	if m.DashedName != "" {
		out += app.ChoiceStyle.Render(fmt.Sprintf("✔ dashed:    %s", m.DashedName)) + "\n"
	}
	if m.CurrentScreen == app.ScreenScript {
		out += app.ChoiceStyle.Render(fmt.Sprintf("✔ styles:    %s", yesNo(m.IncludeStyles))) + "\n"
	}
	if out != "" {
		out += "\n"
	}
	return out
}

// renderYesNo renders both options on one row with the selected one highlighted.
func renderYesNo(index int) string {
	var line string
	for i, val := range []string{"Yes", "No"} {
		if i == index {
			line += app.HighlightStyle.Render("> "+val+" <") + "  "
		} else {
			line += app.ChoiceStyle.Render("  "+val+"  ") + "  "
		}
	}
	return line
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
