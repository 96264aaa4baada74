package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prismbox/internal/config"
	"github.com/alexisbeaulieu97/prismbox/internal/logger"
	"github.com/alexisbeaulieu97/prismbox/internal/render"
	"github.com/alexisbeaulieu97/prismbox/internal/termcaps"
	prismerrors "github.com/alexisbeaulieu97/prismbox/pkg/errors"
)

// writerFor picks the serializer for the requested output mode. The
// auto mode inspects the terminal; ansi forces truecolor escapes even
// when piped.
func writerFor(flags *rootFlags) (render.Writer, error) {
	mode := strings.ToLower(strings.TrimSpace(flags.output))
	if flags.noColor && (mode == "" || mode == "auto" || mode == "ansi") {
		return render.PlainWriter{}, nil
	}
	switch mode {
	case "", "auto":
		return render.ANSIWriter{Profile: termcaps.Detect()}, nil
	case "ansi":
		return render.ANSIWriter{Profile: termcaps.TrueColor()}, nil
	case "plain":
		return render.PlainWriter{}, nil
	case "html":
		return render.HTMLWriter{}, nil
	default:
		return nil, prismerrors.NewValidationError("output", fmt.Sprintf("unknown output mode %q (valid: auto, ansi, plain, html)", flags.output), nil)
	}
}

// loadTheme resolves the base theme for a command: the theme file when
// one is named, the built-in default otherwise.
func loadTheme(flags *rootFlags) (*config.Theme, error) {
	if flags.theme == "" {
		return config.DefaultTheme(), nil
	}
	return config.ParseTheme(flags.theme)
}

// contentLines returns the positional arguments as content, or reads
// lines from stdin when none are given.
func contentLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines, nil
}

func newCommandLogger(verbose bool) (*logger.Logger, error) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true})
}
