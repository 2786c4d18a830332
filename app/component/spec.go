package component

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// camelNameRegex accepts lowerCamelCase names such as "heroBanner" or "myBtn".
	camelNameRegex = regexp.MustCompile(`^[a-z]+([A-Z0-9][a-z0-9]+[A-Za-z0-9])*$`)
	// dashedNameRegex accepts all-lowercase, dash separated names such as "hero-banner".
	dashedNameRegex = regexp.MustCompile(`^[a-z-]+$`)
)

// Input holds the raw answers collected from the operator.
type Input struct {
	CamelName     string
	DashedName    string
	IncludeStyles bool
	IncludeScript bool
}

// Spec is the complete, validated description of one scaffold request.
// It is built once by Derive and passed around by value.
type Spec struct {
	CamelName     string
	DashedName    string
	IncludeStyles bool
	IncludeScript bool

	FolderName           string // Directory created under every output root
	StyleSelectorName    string // CSS selector / style base name
	ScriptFileName       string // Empty unless IncludeScript
	DisplayTitle         string // "hero-banner" -> "hero banner"
	MarkupName           string // Base name of the HTL file
	MarkupEntryPointName string // "heroBanner" -> "renderHeroBanner"
	StyleFileName        string // Empty unless IncludeStyles
}

// ValidateCamelName reports whether name is a usable lowerCamelCase component name.
func ValidateCamelName(name string) error {
	if !camelNameRegex.MatchString(name) {
		return &ValidationError{
			Field:   "camelName",
			Value:   name,
			Message: fmt.Sprintf("Invalid name [%s], name must be lowerCamelCase.", name),
		}
	}
	return nil
}

// ValidateDashedName reports whether name is a usable dashed component name.
func ValidateDashedName(name string) error {
	if !dashedNameRegex.MatchString(name) {
		return &ValidationError{
			Field:   "dashedName",
			Value:   name,
			Message: fmt.Sprintf("Invalid name [%s], all lowercase and dashes.", name),
		}
	}
	return nil
}

// Validate checks both names of the input.
func (in Input) Validate() error {
	if err := ValidateCamelName(in.CamelName); err != nil {
		return err
	}
	return ValidateDashedName(in.DashedName)
}

// Derive computes every derived name from already validated input.
// It has no side effects and always returns the same Spec for the same Input.
func Derive(in Input) Spec {
	s := Spec{
		CamelName:     in.CamelName,
		DashedName:    in.DashedName,
		IncludeStyles: in.IncludeStyles,
		IncludeScript: in.IncludeScript,

		FolderName:           in.CamelName,
		StyleSelectorName:    in.DashedName,
		DisplayTitle:         DisplayTitle(in.DashedName),
		MarkupName:           in.CamelName,
		MarkupEntryPointName: MarkupEntryPointName(in.CamelName),
	}
	if in.IncludeScript {
		s.ScriptFileName = in.CamelName
	}
	if in.IncludeStyles {
		s.StyleFileName = in.CamelName
	}
	return s
}

// DisplayTitle turns "my-button" into "my button".
func DisplayTitle(dashedName string) string {
	return strings.Join(strings.Split(dashedName, "-"), " ")
}

// MarkupEntryPointName turns "myButton" into "renderMyButton".
func MarkupEntryPointName(camelName string) string {
	return "render" + capitalizeFirst(camelName)
}

// capitalizeFirst upper-cases the first letter only; camel names always start
// with an ASCII letter.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return cases.Upper(language.Und).String(s[:1]) + s[1:]
}

// SummaryLine is one label/value pair of the confirmation summary.
type SummaryLine struct {
	Label string
	Value string
}

// Summary lists the derived values shown to the operator before confirmation.
// Optional names only appear when the matching file will be generated.
func (s Spec) Summary() []SummaryLine {
	lines := []SummaryLine{{"folderName", s.FolderName}}
	if s.ScriptFileName != "" {
		lines = append(lines, SummaryLine{"jsFileName", s.ScriptFileName})
	}
	lines = append(lines,
		SummaryLine{"contentTitle", s.DisplayTitle},
		SummaryLine{"htlName", s.MarkupName},
		SummaryLine{"htlTemplateName", s.MarkupEntryPointName},
	)
	if s.StyleFileName != "" {
		lines = append(lines,
			SummaryLine{"lessName", s.StyleSelectorName},
			SummaryLine{"lessFileName", s.StyleFileName},
		)
	}
	return lines
}
