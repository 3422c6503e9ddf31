package cli

import (
	"context"
	"fmt"

	"github.com/yashwakde/promptvault/internal/client/models"
	"github.com/yashwakde/promptvault/internal/client/ui"
	"github.com/yashwakde/promptvault/internal/common"
)

// Profile renders the cached user immediately, then refreshes from the
// backend. A failed refresh keeps the cached rendering and only adds a
// note; the cached record stays useful until the server disagrees.
func (a *App) Profile(ctx context.Context) error {
	cached := a.session.User()
	if cached != nil {
		a.renderProfile(cached)
	}

	fresh, err := a.session.FetchProfile(ctx)
	if err != nil {
		if cached == nil {
			return err
		}
		fmt.Fprintln(a.out, ui.MutedStyle.Render("(profile refresh failed, showing cached data)"))
		return nil
	}
	if fresh == nil {
		if cached == nil {
			return common.ErrNotLoggedIn
		}
		return nil
	}

	if cached == nil || cached.ID != fresh.ID || cached.Email != fresh.Email || cached.Username != fresh.Username {
		a.renderProfile(fresh)
	}
	return nil
}

func (a *App) renderProfile(u *models.User) {
	name := u.Username
	if name == "" {
		name = "Profile"
	}
	fmt.Fprintln(a.out, ui.HeaderStyle.Render(name))
	fmt.Fprintln(a.out, ui.InfoKeyStyle.Render("Email")+ui.InfoValueStyle.Render(u.Email))
	if u.Phone != "" {
		fmt.Fprintln(a.out, ui.InfoKeyStyle.Render("Phone")+ui.InfoValueStyle.Render(u.Phone))
	}
}
