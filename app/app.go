package app

import (
	"github.com/Blainegunn/generator-aem-component/app/component"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Screen indicates which screen is currently shown.
type Screen int

const (
	ScreenCamelName Screen = iota
	ScreenDashedName
	ScreenStyles
	ScreenScript
	ScreenConfirm
	ScreenDone
)

// Questions shown by every collector, in order.
const (
	QuestionCamelName  = "What is the name of the component (lowerCamelCase)?"
	QuestionDashedName = "What is the name of the component (with-dashes-all-lowercase)?"
	QuestionStyles     = "Do you want to include styles?"
	QuestionScript     = "Do you want to include javascript?"
	QuestionConfirm    = "Does this look correct?"
	SummaryTitle       = "Look at what you made:"
)

// Choice indexes for yes/no screens.
const (
	ChoiceYes = 0
	ChoiceNo  = 1
)

// Model is the primary application state shared by all screens.
type Model struct {
	CurrentScreen  Screen
	TerminalWidth  int
	TerminalHeight int
	ProjectPath    string

	NameInput   textinput.Model
	ChoiceIndex int
	ErrMsg      string

	CamelName     string
	DashedName    string
	IncludeStyles bool
	IncludeScript bool

	// Spec is derived once the last question before confirmation is answered.
	Spec component.Spec
	// PlannedFiles is the preview shown on the confirm screen, relative to ProjectPath.
	PlannedFiles []string

	Confirmed bool
	Cancelled bool
}

// NewModel returns a model positioned on the first question.
func NewModel(projectPath string) Model {
	ti := textinput.New()
	ti.Placeholder = "myComponent"
	ti.CharLimit = 64
	ti.Prompt = "› "
	ti.Focus()

	return Model{
		CurrentScreen: ScreenCamelName,
		ProjectPath:   projectPath,
		NameInput:     ti,
	}
}

var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).MarginTop(1)
	SubtitleStyle  = lipgloss.NewStyle().Bold(true)
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	ChoiceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	DocStyle       = lipgloss.NewStyle().Padding(1, 2).Margin(1, 2)
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	LabelStyle     = lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color("#AAAAAA"))
	ValueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF"))
)
