package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Blainegunn/generator-aem-component/app/component"
	"github.com/Blainegunn/generator-aem-component/app/generator"
	"github.com/Blainegunn/generator-aem-component/app/utils"
	"github.com/atotto/clipboard"
	"github.com/fatih/color"
)

// CancelNotice is printed when the operator declines the summary.
const CancelNotice = "Quitting: try again with the correct inputs."

var (
	bannerColor  = color.New(color.FgRed, color.Bold)
	createdColor = color.New(color.FgGreen)
	updateColor  = color.New(color.FgYellow)
	skipColor    = color.New(color.FgCyan)
	quitColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.Faint)
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func printBanner(w io.Writer) {
	fmt.Fprint(w, "Welcome to the ")
	bannerColor.Fprint(w, "aemgen")
	fmt.Fprintln(w, " generator!")
	fmt.Fprintln(w, "I create stub files for new AEM components.")
	fmt.Fprintln(w)
}

func printCancelled(w io.Writer) {
	quitColor.Fprintln(w, CancelNotice)
}

// printResult reports every written or skipped file followed by the tree.
func printResult(w io.Writer, g *generator.Generator, report *generator.Report) {
	res := report.Result
	skipped := make(map[string]bool, len(res.Skipped))

	for _, path := range res.Created {
		createdColor.Fprint(w, "Created ")
		fmt.Fprintln(w, g.Rel(path))
	}
	for _, path := range res.Skipped {
		skipped[path] = true
		skipColor.Fprint(w, "Skipping ")
		fmt.Fprintf(w, "%s (already exists)\n", g.Rel(path))
	}
	if res.IndexPath != "" {
		if res.IndexUpdated {
			updateColor.Fprint(w, "Updating ")
			fmt.Fprintln(w, g.Rel(res.IndexPath))
		} else {
			skipColor.Fprint(w, "Skipping ")
			fmt.Fprintf(w, "%s update\n", g.Rel(res.IndexPath))
		}
	}

	all := append(append([]string{}, res.Created...), res.Skipped...)
	if len(all) == 0 {
		return
	}
	rel := make([]string, 0, len(all))
	relSkipped := make(map[string]bool, len(skipped))
	for _, path := range all {
		r := g.Rel(path)
		rel = append(rel, r)
		if skipped[path] {
			relSkipped[r] = true
		}
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, utils.RenderPlannedTree(rel, func(path string) string {
		if relSkipped[path] {
			return "(skipped)"
		}
		return ""
	}))
}

// printPlan reports what a dry run would have written.
func printPlan(w io.Writer, g *generator.Generator, report *generator.Report) {
	dimColor.Fprintln(w, "Dry run, nothing was written.")
	paths := make([]string, 0, len(report.Planned))
	for _, a := range report.Planned {
		paths = append(paths, g.Rel(a.Path))
		fmt.Fprintf(w, "Would create %s\n", g.Rel(a.Path))
	}
	if report.IndexLine != "" {
		fmt.Fprintf(w, "Would append %s to %s\n", strings.TrimSpace(report.IndexLine), g.Rel(g.Config.Paths.Styles))
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, utils.RenderPlannedTree(paths, nil))
}

func printCopied(w io.Writer, snippet string) {
	createdColor.Fprint(w, "Copied ")
	fmt.Fprintln(w, snippet)
}

// HTLCallSnippet is the markup that includes the generated template from
// another HTL file.
func HTLCallSnippet(spec component.Spec) string {
	return fmt.Sprintf(`<sly data-sly-use.%s="%s/%s.html" data-sly-call="${%s.%s}"/>`,
		spec.CamelName, spec.FolderName, spec.MarkupName, spec.CamelName, spec.MarkupEntryPointName)
}
