// Package fileprocessor handles the processing of a single program file
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile runs the program file of the options, frames are rendered to
// the writer if the display is enabled.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	runOpts options.Runner, writer io.Writer) (runner.Result, error) {

	p := pipeline.New(logger)
	result, err := p.Execute(ctx, opts, runOpts, writer)
	if err != nil {
		return result, fmt.Errorf("processing file %s: %w", opts.Input, err)
	}
	return result, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
