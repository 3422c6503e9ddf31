package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yashwakde/promptvault/internal/client/models"
	"github.com/yashwakde/promptvault/internal/client/ui"
	"github.com/yashwakde/promptvault/internal/common"
)

// Export writes the nth prompt of the last rendered list to a text file
// in the working directory.
func (a *App) Export(arg string) error {
	prompts := a.lastListSnapshot()
	if len(prompts) == 0 {
		return fmt.Errorf("%w: run 'allprompts' or 'myprompts' first", common.ErrValidation)
	}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(prompts) {
		return fmt.Errorf("%w: export needs a number between 1 and %d", common.ErrValidation, len(prompts))
	}

	p := prompts[n-1]
	path := exportFileName(p)
	if err := os.WriteFile(path, []byte(exportContent(p)), 0o644); err != nil {
		return err
	}

	fmt.Fprintln(a.out, ui.SuccessStyle.Render("Saved to "+path))
	return nil
}

// exportFileName sanitizes the prompt title into a safe file name,
// keeping letters, digits, dashes, underscores and spaces, capped at 50
// characters. Matches the naming the web client used for downloads.
func exportFileName(p models.Prompt) string {
	var b strings.Builder
	for _, r := range p.Title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == ' ':
			b.WriteRune(r)
		}
	}
	name := strings.TrimSpace(b.String())
	if len(name) > 50 {
		name = strings.TrimSpace(name[:50])
	}
	if name == "" {
		name = "prompt"
	}
	return name + ".txt"
}

func exportContent(p models.Prompt) string {
	var b strings.Builder
	b.WriteString(p.Title)
	b.WriteString("\n\n")
	b.WriteString(p.Description)
	b.WriteString("\n")
	if p.Tag != "" {
		b.WriteString("\nTag: " + p.Tag + "\n")
	}
	return b.String()
}
