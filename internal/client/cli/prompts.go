package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/yashwakde/promptvault/internal/client/api"
	"github.com/yashwakde/promptvault/internal/client/models"
	"github.com/yashwakde/promptvault/internal/client/ui"
	"github.com/yashwakde/promptvault/internal/common"
)

// CreatePrompt is the create page: title and description are required
// and checked before any network call; tag is optional; the author is
// the current user.
func (a *App) CreatePrompt(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description / prompt text", a.out)
	if err != nil {
		return err
	}
	tag, err := getSimpleText(a.reader, "Tag (optional)", a.out)
	if err != nil {
		return err
	}

	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: please provide title and description", common.ErrValidation)
	}

	req := api.CreatePromptRequest{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Tag:         strings.TrimSpace(tag),
	}
	if u := a.session.User(); u != nil {
		req.Author = u.ID
	}

	if _, err := a.client.CreatePrompt(ctx, req); err != nil {
		return err
	}

	fmt.Fprintln(a.out, ui.SuccessStyle.Render("Prompt created successfully!"))
	return nil
}

// AllPrompts renders every saved prompt.
func (a *App) AllPrompts(ctx context.Context) error {
	prompts, err := a.client.AllPrompts(ctx)
	if err != nil {
		return err
	}
	a.setLastList(prompts)

	fmt.Fprintln(a.out, ui.HeaderStyle.Render("All Prompts"))
	a.renderPrompts(prompts)
	return nil
}

// MyPrompts renders the current user's prompts. Requires a logged-in
// user before any network call is issued.
func (a *App) MyPrompts(ctx context.Context) error {
	u := a.session.User()
	if u == nil || u.ID == "" {
		return common.ErrNotLoggedIn
	}

	prompts, err := a.client.MyPrompts(ctx, u.ID)
	if err != nil {
		return err
	}
	a.setLastList(prompts)

	fmt.Fprintln(a.out, ui.HeaderStyle.Render("My Prompts"))
	a.renderPrompts(prompts)
	return nil
}

func (a *App) renderPrompts(prompts []models.Prompt) {
	if len(prompts) == 0 {
		fmt.Fprintln(a.out, ui.MutedStyle.Render("No prompts found."))
		return
	}
	for i, p := range prompts {
		fmt.Fprintln(a.out, renderPromptCard(i+1, p))
	}
	fmt.Fprintln(a.out, ui.MutedStyle.Render("Use 'export <n>' to save a prompt to a file."))
}

func renderPromptCard(n int, p models.Prompt) string {
	var b strings.Builder
	b.WriteString(ui.CardTitleStyle.Render(fmt.Sprintf("%d. %s", n, p.Title)))
	b.WriteString("\n")
	b.WriteString(ui.CardBodyStyle.Render(p.Description))
	var footer []string
	if p.Tag != "" {
		footer = append(footer, ui.TagStyle.Render("#"+p.Tag))
	}
	if p.CreatedAt != "" {
		footer = append(footer, ui.MutedStyle.Render(p.CreatedAt))
	}
	if len(footer) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(footer, "  "))
	}
	return ui.CardStyle.Render(b.String())
}
