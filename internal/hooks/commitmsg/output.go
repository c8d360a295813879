package commitmsg

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gitmoji/conventional-pre-commit/gitmoji"
)

const gitmojiURL = "https://gitmoji.dev/"

// emojiSampleSize limits how many emojis the guidance text shows.
const emojiSampleSize = 10

// printer renders validation diagnostics, optionally without color.
type printer struct {
	out    io.Writer
	red    lipgloss.Style
	yellow lipgloss.Style
	blue   lipgloss.Style
}

func newPrinter(out io.Writer, color bool) *printer {
	renderer := lipgloss.NewRenderer(out)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &printer{
		out:    out,
		red:    renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		yellow: renderer.NewStyle().Foreground(lipgloss.Color("3")),
		blue:   renderer.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// fail prints the offending message and a short diagnosis.
func (p *printer) fail(message string) {
	fmt.Fprintf(p.out, "%s %s\n", p.red.Render("[Bad commit message] >>"), strings.TrimRight(message, "\n"))
	fmt.Fprintln(p.out, p.yellow.Render("Your commit message does not follow Customized Conventional Commits formatting"))
	fmt.Fprintln(p.out, p.blue.Render(gitmojiURL))
}

// verboseHint points at the --verbose flag after a terse failure.
func (p *printer) verboseHint() {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.yellow.Render("Use the --verbose arg for more information"))
}

// failVerbose prints the expected pattern, examples, reason-specific
// guidance, and how to re-edit the commit message.
func (p *printer) failVerbose(verdict gitmoji.Verdict, set gitmoji.EmojiSet, inputPath string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.yellow.Render("Customized Conventional Commit messages follow a pattern like:"))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "    <emoji> <description>")
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "    optional extended body")
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.yellow.Render("Examples:"))
	fmt.Fprintln(p.out, "    🔖 Use latest versions of all items")
	fmt.Fprintln(p.out, "    ⚡️ Slightly upsize build storage")
	fmt.Fprintln(p.out, "    🔧 Update enabled items directory")
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.yellow.Render("Please correct the following errors:"))
	fmt.Fprintln(p.out)

	switch verdict.Reason {
	case gitmoji.ReasonNoEmojiPrefix:
		sample := set
		if len(sample) > emojiSampleSize {
			sample = sample[:emojiSampleSize]
		}

		fmt.Fprintln(p.out, p.yellow.Render(
			fmt.Sprintf("  - Expected GitMoji emoji at the start. Examples: %s...", strings.Join(sample, " ")),
		))

	case gitmoji.ReasonEmptyDescription:
		fmt.Fprintln(p.out, p.yellow.Render("  - Expected description after the emoji (e.g., 'Fix authentication bug')"))
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.yellow.Render("Run:"))
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "    git commit --edit --file=%s\n", inputPath)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.yellow.Render("to edit the commit message and retry the commit."))
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "%s %s\n", p.yellow.Render("For a complete list of GitMoji emojis, visit:"), p.blue.Render(gitmojiURL))
}

// badEncoding reports a commit message that is not valid UTF-8.
func (p *printer) badEncoding() {
	fmt.Fprintln(p.out, p.red.Render("[Bad commit message encoding]"))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.yellow.Render("The commit message could not be decoded as UTF-8."))
	fmt.Fprintln(p.out, p.yellow.Render("Please configure git to write commit messages in UTF-8,"))
	fmt.Fprintf(p.out, "%s %s\n", p.yellow.Render("see"), p.blue.Render("https://git-scm.com/docs/git-commit/#_discussion"))
}
