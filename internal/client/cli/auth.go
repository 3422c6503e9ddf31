package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/yashwakde/promptvault/internal/client/api"
	"github.com/yashwakde/promptvault/internal/client/payload"
	"github.com/yashwakde/promptvault/internal/client/ui"
	"github.com/yashwakde/promptvault/internal/common"
)

// Register is the sign-up page: username, email and password are
// required and checked before any network call; phone is optional.
// Success parks the pending registration and points the user at verify.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	phone, err := getSimpleText(a.reader, "Enter phone (optional)", a.out)
	if err != nil {
		return err
	}

	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || len(password) == 0 {
		return fmt.Errorf("%w: please fill username, email and password", common.ErrValidation)
	}

	req := api.RegisterRequest{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: string(password),
		Phone:    strings.TrimSpace(phone),
	}
	if err := a.session.Register(ctx, req); err != nil {
		return err
	}

	fmt.Fprintln(a.out, ui.SuccessStyle.Render("Registration submitted. Run 'verify' to complete it."))
	return nil
}

// Verify is the email-verification page. It refuses to run without a
// pending registration, prefills the email from it, and reports the
// outcome; applying the returned credential is the session store's job.
func (a *App) Verify(ctx context.Context) error {
	pendingEmail, echo, err := a.session.PendingRegistration(ctx)
	if err != nil {
		return err
	}
	if pendingEmail == "" && echo == nil {
		return fmt.Errorf("%w: please register first", common.ErrNoPendingRegistration)
	}

	fmt.Fprintln(a.out, ui.HeaderStyle.Render("Verify your account"))
	if m, ok := echo.(map[string]any); ok {
		if u := payload.User(m); u != nil && u.Username != "" {
			fmt.Fprintln(a.out, ui.MutedStyle.Render("Pending registration for "+u.Username))
		}
	}

	email, err := GetTextDefault(a.reader, "Enter email", pendingEmail, a.out)
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "Enter verification code", a.out)
	if err != nil {
		return err
	}

	if err := a.session.VerifyEmail(ctx, strings.TrimSpace(email), strings.TrimSpace(code)); err != nil {
		return err
	}

	if a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, ui.SuccessStyle.Render("Verified and logged in."))
	} else {
		fmt.Fprintln(a.out, ui.SuccessStyle.Render("Verified. Run 'login' to sign in."))
	}
	return nil
}

// Login is the sign-in page.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, strings.TrimSpace(email), string(password)); err != nil {
		return err
	}

	name := strings.TrimSpace(email)
	if u := a.session.User(); u != nil && u.Username != "" {
		name = u.Username
	}
	fmt.Fprintf(a.out, "%s\n", ui.SuccessStyle.Render("Welcome back, "+name+"!"))
	return nil
}

// Logout clears the session locally whatever the backend says.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, ui.MutedStyle.Render("Logged out."))
	return nil
}
