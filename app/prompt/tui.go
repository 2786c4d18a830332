package prompt

import (
	"context"
	"fmt"
	"io"

	"github.com/Blainegunn/generator-aem-component/app"
	"github.com/Blainegunn/generator-aem-component/app/component"
	"github.com/Blainegunn/generator-aem-component/app/screens"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PreviewFunc lists the files a spec would produce, for the confirm screen.
type PreviewFunc func(spec component.Spec) []string

// TUICollector asks the questions in a bubbletea program.
type TUICollector struct {
	In          io.Reader
	Out         io.Writer
	ProjectPath string
	Preview     PreviewFunc
}

// Collect runs the program until the confirm screen is answered or the
// operator quits. Quitting early is reported as a declined outcome.
func (c *TUICollector) Collect(ctx context.Context) (Outcome, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.In != nil {
		opts = append(opts, tea.WithInput(c.In))
	}
	if c.Out != nil {
		opts = append(opts, tea.WithOutput(c.Out))
	}

	pm := ProgramModel{M: app.NewModel(c.ProjectPath), Preview: c.Preview}
	final, err := tea.NewProgram(pm, opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return Outcome{}, ctx.Err()
		}
		return Outcome{}, fmt.Errorf("running prompt: %w", err)
	}

	fm, ok := final.(ProgramModel)
	if !ok {
		return Outcome{}, fmt.Errorf("unexpected model type %T", final)
	}
	return fm.Outcome(), nil
}

// ProgramModel wraps app.Model so we can hold Update logic in one place.
type ProgramModel struct {
	M       app.Model
	Preview PreviewFunc
}

// Outcome reports what the operator answered so far.
func (pm ProgramModel) Outcome() Outcome {
	return Outcome{Spec: pm.M.Spec, Confirmed: pm.M.Confirmed && !pm.M.Cancelled}
}

func (pm ProgramModel) Init() tea.Cmd {
	return textinput.Blink
}

func (pm ProgramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typedMsg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.M.TerminalWidth = typedMsg.Width
		pm.M.TerminalHeight = typedMsg.Height
		return pm, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch pm.M.CurrentScreen {
		case app.ScreenCamelName:
			pm.M, cmd = screens.UpdateScreenCamelName(pm.M, typedMsg)
		case app.ScreenDashedName:
			pm.M, cmd = screens.UpdateScreenDashedName(pm.M, typedMsg)
		case app.ScreenStyles:
			pm.M, cmd = screens.UpdateScreenStyles(pm.M, typedMsg)
		case app.ScreenScript:
			pm.M, cmd = screens.UpdateScreenScript(pm.M, typedMsg)
		case app.ScreenConfirm:
			pm.M, cmd = screens.UpdateScreenConfirm(pm.M, typedMsg)
		default:
			return pm, nil
		}
		if pm.M.CurrentScreen == app.ScreenConfirm && pm.M.PlannedFiles == nil && pm.Preview != nil {
			pm.M.PlannedFiles = pm.Preview(pm.M.Spec)
		}
		return pm, cmd
	}

	// Cursor blink and other input messages.
	if pm.M.CurrentScreen == app.ScreenCamelName || pm.M.CurrentScreen == app.ScreenDashedName {
		var cmd tea.Cmd
		pm.M.NameInput, cmd = pm.M.NameInput.Update(msg)
		return pm, cmd
	}
	return pm, nil
}

// View selects which screen's View function to call based on pm.M.CurrentScreen.
func (pm ProgramModel) View() string {
	switch pm.M.CurrentScreen {
	case app.ScreenCamelName, app.ScreenDashedName:
		return screens.ViewNamePrompt(pm.M)
	case app.ScreenStyles, app.ScreenScript:
		return screens.ViewChoice(pm.M)
	case app.ScreenConfirm:
		return screens.ViewConfirm(pm.M)
	}
	return ""
}
