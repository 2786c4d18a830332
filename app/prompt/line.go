package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Blainegunn/generator-aem-component/app"
	"github.com/Blainegunn/generator-aem-component/app/component"
	"github.com/fatih/color"
)

// ErrInputClosed is returned when input ends before the questions are answered.
var ErrInputClosed = errors.New("input closed before all questions were answered")

var (
	questionMark = color.New(color.FgGreen, color.Bold)
	errorMark    = color.New(color.FgRed)
	summaryTitle = color.New(color.FgCyan)
	summaryValue = color.New(color.FgBlue)
)

// LineCollector asks the questions one line at a time. It is used when stdin
// is not a terminal, e.g. when answers are piped in.
type LineCollector struct {
	reader *bufio.Reader
	out    io.Writer

	// pending holds a read that was still blocked when its context ended.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewLineCollector reads answers from r and writes questions to w.
func NewLineCollector(r io.Reader, w io.Writer) *LineCollector {
	return &LineCollector{reader: bufio.NewReader(r), out: w}
}

// Collect runs the full question sequence. Invalid names are asked again
// until a valid one is entered; declining the confirmation returns an
// Outcome with Confirmed set to false.
func (c *LineCollector) Collect(ctx context.Context) (Outcome, error) {
	camel, err := c.askName(ctx, app.QuestionCamelName, component.ValidateCamelName)
	if err != nil {
		return Outcome{}, err
	}
	dashed, err := c.askName(ctx, app.QuestionDashedName, component.ValidateDashedName)
	if err != nil {
		return Outcome{}, err
	}
	styles, err := c.askYesNo(ctx, app.QuestionStyles, true)
	if err != nil {
		return Outcome{}, err
	}
	script, err := c.askYesNo(ctx, app.QuestionScript, true)
	if err != nil {
		return Outcome{}, err
	}

	spec := component.Derive(component.Input{
		CamelName:     camel,
		DashedName:    dashed,
		IncludeStyles: styles,
		IncludeScript: script,
	})
	c.printSummary(spec)

	confirmed, err := c.askYesNo(ctx, app.QuestionConfirm, false)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Spec: spec, Confirmed: confirmed}, nil
}

func (c *LineCollector) askName(ctx context.Context, question string, validate func(string) error) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		questionMark.Fprint(c.out, "? ")
		fmt.Fprintf(c.out, "%s ", question)

		answer, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		if err := validate(answer); err != nil {
			errorMark.Fprint(c.out, ">> ")
			fmt.Fprintln(c.out, err.Error())
			continue
		}
		return answer, nil
	}
}

func (c *LineCollector) askYesNo(ctx context.Context, question string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		questionMark.Fprint(c.out, "? ")
		fmt.Fprintf(c.out, "%s %s ", question, hint)

		answer, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		errorMark.Fprint(c.out, ">> ")
		fmt.Fprintf(c.out, "Please answer yes or no, got [%s].\n", answer)
	}
}

func (c *LineCollector) printSummary(spec component.Spec) {
	summaryTitle.Fprintln(c.out, app.SummaryTitle)
	for _, line := range spec.Summary() {
		fmt.Fprintf(c.out, "%-18s", line.Label+":")
		summaryValue.Fprintln(c.out, line.Value)
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is still returned; running out of input is
// ErrInputClosed. The read itself cannot be interrupted, so it runs in its
// own goroutine and a cancelled ctx returns immediately, leaving the read
// pending for the next call.
func (c *LineCollector) readLine(ctx context.Context) (string, error) {
	if c.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := c.reader.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		c.pending = ch
	}

	var r lineResult
	select {
	case r = <-c.pending:
		c.pending = nil
	case <-ctx.Done():
		return "", ctx.Err()
	}

	line := strings.TrimRight(r.line, "\r\n")
	if r.err != nil {
		if errors.Is(r.err, io.EOF) && r.line != "" {
			return line, nil
		}
		if errors.Is(r.err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("reading answer: %w", r.err)
	}
	return line, nil
}
