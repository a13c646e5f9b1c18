package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go-fx-exchange/command"
)

// App is the interactive read-process-print loop
type App struct {
	// processor turns one command line into a Result
	processor command.Service

	// output renders usage and Results
	output *Output

	// in source of command lines
	in io.Reader

	// prompt destination for the input prompt
	prompt io.Writer
}

// NewApp constructs a valid App reading commands from in
func NewApp(processor command.Service, output *Output, in io.Reader, prompt io.Writer) *App {
	return &App{
		processor: processor,
		output:    output,
		in:        in,
		prompt:    prompt,
	}
}

// Run shows the usage line, then reads commands one line at a time until
// end of input. Blank lines are skipped without being processed. Every
// non-blank line produces exactly one rendered Result, so no input can end
// the loop early.
func (a *App) Run(ctx context.Context) error {
	a.output.ShowUsage()

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.prompt, "> ")
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		result := a.processor.Process(ctx, line)
		a.output.ShowResult(ctx, result)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
