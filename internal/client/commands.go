// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-notes/models"
)

type runFunc = func(ctx context.Context, session models.Session) error

func (a *App) registerCommands() map[string]command {
	return map[string]command{
		// ── account ─────────────────────────────────────────────────────────
		"register": {usage: "-name NAME -email EMAIL -password PASSWORD", bind: a.register},
		"login":    {usage: "-email EMAIL -password PASSWORD", bind: a.login},
		"logout":   {usage: "", bind: a.logout},
		"whoami":   {usage: "", withSession: true, bind: a.whoami},
		"profile":  {usage: "[-name NAME]", withSession: true, bind: a.profile},
		"passwd":   {usage: "-old PASSWORD -new PASSWORD", withSession: true, bind: a.passwd},
		"forgot":   {usage: "-email EMAIL", bind: a.forgot},
		"reset":    {usage: "-token TOKEN -password PASSWORD", bind: a.reset},

		// ── notes ───────────────────────────────────────────────────────────
		"list":  {usage: "[-q QUERY]", withSession: true, bind: a.list},
		"add":   {usage: "-title TITLE -content CONTENT", withSession: true, bind: a.add},
		"edit":  {usage: "-id ID [-title TITLE] [-content CONTENT]", withSession: true, bind: a.edit},
		"pin":   {usage: "-id ID", withSession: true, bind: a.pin(true)},
		"unpin": {usage: "-id ID", withSession: true, bind: a.pin(false)},
		"rm":    {usage: "-id ID", withSession: true, bind: a.remove},

		"tui":     {usage: "(interactive mode)", bind: a.runInteractive},
		"version": {usage: "", bind: a.version},
	}
}

func (a *App) register(fs *flag.FlagSet) runFunc {
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")

	return func(ctx context.Context, _ models.Session) error {
		if err := requireFlags(fs, "name", "email", "password"); err != nil {
			return err
		}

		session, err := a.auth.Register(ctx, models.RegisterRequest{Name: *name, Email: *email, Password: *password})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Registered and logged in as %s <%s>\n", session.Name, session.Email)
		return nil
	}
}

func (a *App) login(fs *flag.FlagSet) runFunc {
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")

	return func(ctx context.Context, _ models.Session) error {
		if err := requireFlags(fs, "email", "password"); err != nil {
			return err
		}

		session, err := a.auth.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Logged in as %s <%s>\n", session.Name, session.Email)
		return nil
	}
}

func (a *App) logout(_ *flag.FlagSet) runFunc {
	return func(ctx context.Context, _ models.Session) error {
		if err := a.auth.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Logged out")
		return nil
	}
}

func (a *App) whoami(_ *flag.FlagSet) runFunc {
	return func(_ context.Context, session models.Session) error {
		a.printSession(session)
		return nil
	}
}

func (a *App) profile(fs *flag.FlagSet) runFunc {
	name := fs.String("name", "", "new display name")

	return func(ctx context.Context, session models.Session) error {
		var (
			profile models.UserProfile
			err     error
		)
		if isSet(fs, "name") {
			profile, err = a.auth.UpdateProfile(ctx, session, *name)
		} else {
			profile, err = a.auth.Profile(ctx, session)
		}
		if err != nil {
			return err
		}

		a.printProfile(profile)
		return nil
	}
}

func (a *App) passwd(fs *flag.FlagSet) runFunc {
	oldPassword := fs.String("old", "", "current password")
	newPassword := fs.String("new", "", "new password")

	return func(ctx context.Context, session models.Session) error {
		if err := requireFlags(fs, "old", "new"); err != nil {
			return err
		}

		msg, err := a.auth.ChangePassword(ctx, session, *oldPassword, *newPassword)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, msg)
		return nil
	}
}

func (a *App) forgot(fs *flag.FlagSet) runFunc {
	email := fs.String("email", "", "account email")

	return func(ctx context.Context, _ models.Session) error {
		if err := requireFlags(fs, "email"); err != nil {
			return err
		}

		resp, err := a.auth.ForgotPassword(ctx, *email)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, resp.Message)
		if resp.ResetToken != "" {
			fmt.Fprintf(a.out, "Reset token: %s\n", resp.ResetToken)
		}
		return nil
	}
}

func (a *App) reset(fs *flag.FlagSet) runFunc {
	token := fs.String("token", "", "reset token")
	password := fs.String("password", "", "new password")

	return func(ctx context.Context, _ models.Session) error {
		if err := requireFlags(fs, "token", "password"); err != nil {
			return err
		}

		msg, err := a.auth.ResetPassword(ctx, *token, *password)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, msg)
		return nil
	}
}

func (a *App) list(fs *flag.FlagSet) runFunc {
	query := fs.String("q", "", "case-insensitive text to search in title and content")

	return func(ctx context.Context, session models.Session) error {
		notes, err := a.notes.List(ctx, session, *query)
		if err != nil {
			return err
		}
		a.printNotes(notes)
		return nil
	}
}

func (a *App) add(fs *flag.FlagSet) runFunc {
	title := fs.String("title", "", "note title")
	content := fs.String("content", "", "note content")

	return func(ctx context.Context, session models.Session) error {
		if err := requireFlags(fs, "title", "content"); err != nil {
			return err
		}

		note, err := a.notes.Create(ctx, session, *title, *content)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Created note %s\n", note.ID)
		return nil
	}
}

// edit sends only the flags that were given, so an omitted -content keeps
// the stored content.
func (a *App) edit(fs *flag.FlagSet) runFunc {
	id := fs.String("id", "", "note id")
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new content")

	return func(ctx context.Context, session models.Session) error {
		if err := requireFlags(fs, "id"); err != nil {
			return err
		}

		var update models.NoteUpdate
		if isSet(fs, "title") {
			update.Title = title
		}
		if isSet(fs, "content") {
			update.Content = content
		}

		note, err := a.notes.Update(ctx, session, *id, update)
		if err != nil {
			return err
		}
		a.printNotes([]models.Note{note})
		return nil
	}
}

func (a *App) pin(pinned bool) func(fs *flag.FlagSet) runFunc {
	return func(fs *flag.FlagSet) runFunc {
		id := fs.String("id", "", "note id")

		return func(ctx context.Context, session models.Session) error {
			if err := requireFlags(fs, "id"); err != nil {
				return err
			}

			note, err := a.notes.SetPinned(ctx, session, *id, pinned)
			if err != nil {
				return err
			}

			state := "Unpinned"
			if note.IsPinned {
				state = "Pinned"
			}
			fmt.Fprintf(a.out, "%s note %s\n", state, note.ID)
			return nil
		}
	}
}

func (a *App) remove(fs *flag.FlagSet) runFunc {
	id := fs.String("id", "", "note id")

	return func(ctx context.Context, session models.Session) error {
		if err := requireFlags(fs, "id"); err != nil {
			return err
		}

		msg, err := a.notes.Delete(ctx, session, *id)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, msg)
		return nil
	}
}

// version prints the client version and, when reachable, the server's.
func (a *App) runInteractive(_ *flag.FlagSet) runFunc {
	return func(ctx context.Context, _ models.Session) error {
		return a.interactive(ctx)
	}
}

func (a *App) version(_ *flag.FlagSet) runFunc {
	return func(ctx context.Context, _ models.Session) error {
		fmt.Fprintf(a.out, "client: %s\n", a.appInfo.ClientVersion())

		serverVersion, err := a.appInfo.ServerVersion(ctx)
		if err != nil {
			a.logger.Err(err).Msg("error getting server version")
			fmt.Fprintf(a.out, "server: unavailable (%s)\n", Describe(err))
			return nil
		}
		fmt.Fprintf(a.out, "server: %s\n", serverVersion)
		return nil
	}
}
