package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yashwakde/promptvault/internal/client/ui"
)

func (a *App) getStatus() string {
	u := a.currentUser()
	if u == nil {
		return ""
	}
	name := u.Username
	if name == "" {
		name = u.Email
	}
	if name == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", name)
}

// Root runs the read-eval-print loop. It reads a line, parses the
// first token as the command, and dispatches to the page handlers.
// The loop exits on EOF or when the user types "exit" or "quit".
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, ui.HeaderStyle.Render("PromptVault"))
	fmt.Fprintln(a.out, "Type 'help' for commands.")

	scanner := bufio.NewScanner(a.reader)

	for {
		fmt.Fprintf(a.out, "pv %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			a.printHelp()
		case "register":
			err = a.Register(ctx)
		case "verify":
			err = a.Verify(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "profile":
			err = a.Profile(ctx)
		case "create":
			err = a.CreatePrompt(ctx)
		case "allprompts":
			err = a.AllPrompts(ctx)
		case "myprompts":
			err = a.MyPrompts(ctx)
		case "export":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: export <n>")
				continue
			}
			err = a.Export(args[0])
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(a.out, ui.ErrorStyle.Render(err.Error()))
		}
	}
}

func (a *App) printHelp() {
	if a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Available commands: profile, create, allprompts, myprompts, export <n>, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, verify, login, allprompts, exit")
	}
}
