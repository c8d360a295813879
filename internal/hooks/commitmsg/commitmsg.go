// Package commitmsg implements the commit-msg hook around the gitmoji
// validator: argument parsing, config loading, file reading, and diagnostics
// rendering.
package commitmsg

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/gitmoji/conventional-pre-commit/gitmoji"
)

// ErrInvalidCommitMessage signals that the commit message failed validation.
// The diagnostic output has already been written when it is returned, the
// caller only needs to map it to a non-zero exit code.
var ErrInvalidCommitMessage = errors.New("commit message does not follow Customized Conventional Commits formatting")

// options holds the effective settings for one validation run.
type options struct {
	strict  bool
	verbose bool
	color   bool
	emojis  []string
	input   string
}

// parseArgs parses command-line arguments. All positional arguments except
// the last are extra emojis; the last one is the commit message file.
func parseArgs(args []string) (*options, error) {
	if len(args) == 0 {
		return nil, errors.New("missing input file argument")
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Don't print default error messages

	opts := &options{}
	fs.BoolVar(&opts.strict, "strict", false, "Disallow autosquash and merge commits")
	fs.BoolVar(&opts.verbose, "verbose", false, "Print more verbose error output")
	noColor := fs.Bool("no-color", false, "Disable color in output")

	err := fs.Parse(args[1:])
	if err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return nil, errors.New("missing input file argument")
	}

	opts.emojis = rest[:len(rest)-1]
	opts.input = rest[len(rest)-1]
	opts.color = !*noColor

	return opts, nil
}

// Run validates the commit message in the file named by the arguments and
// writes diagnostics to stdout. It returns ErrInvalidCommitMessage when the
// message does not match the format.
func Run(stdout io.Writer, args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	// Load optional configuration from .gitmoji-lint.yml
	config, err := LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts.strict = opts.strict || config.Strict
	opts.verbose = opts.verbose || config.Verbose

	data, err := os.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("failed to read commit message file: %w", err)
	}

	p := newPrinter(stdout, opts.color)

	if !utf8.Valid(data) {
		p.badEncoding()
		return ErrInvalidCommitMessage
	}

	extras := make([]string, 0, len(config.Emojis)+len(opts.emojis))
	extras = append(extras, config.Emojis...)
	extras = append(extras, opts.emojis...)

	set := gitmoji.ResolveEmojiSet(extras)

	mode := gitmoji.Lenient
	if opts.strict {
		mode = gitmoji.Strict
	}

	message := string(data)

	verdict := gitmoji.Validate(message, set, mode)
	if verdict.Matched {
		return nil
	}

	p.fail(message)

	if opts.verbose {
		p.failVerbose(verdict, set, opts.input)
	} else {
		p.verboseHint()
	}

	return ErrInvalidCommitMessage
}
