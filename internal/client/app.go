// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/tui"
	"github.com/MKhiriev/go-notes/models"
)

type App struct {
	auth    service.ClientAuthService
	notes   service.ClientNoteService
	appInfo service.ClientAppInfoService

	out      io.Writer
	commands map[string]command
	now      func() time.Time

	// interactive runs the full-screen client behind `notes tui`.
	interactive func(ctx context.Context) error

	logger *logger.Logger
}

// command is one CLI verb. Commands with withSession run only when a
// session is stored and receive it.
type command struct {
	usage       string
	withSession bool
	bind        func(fs *flag.FlagSet) func(ctx context.Context, session models.Session) error
}

func NewApp(services *service.ClientServices, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		auth:    services.AuthService,
		notes:   services.NoteService,
		appInfo: services.AppInfoService,
		out:     out,
		now:     time.Now,
		logger:  logger,

		interactive: tui.New(services, logger).Run,
	}
	a.commands = a.registerCommands()
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.Usage = func() {
		fmt.Fprintf(a.out, "usage: notes %s %s\n", name, cmd.usage)
		fs.PrintDefaults()
	}
	run := cmd.bind(fs)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	var session models.Session
	if cmd.withSession {
		var err error
		if session, err = a.auth.Session(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	return run(ctx, session)
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: notes [-a server] [-d session-db] [-c config] [-timeout d] <command> [flags]")
	fmt.Fprintln(a.out, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %-9s %s\n", name, a.commands[name].usage)
	}
}

// requireFlags reports the first named flag that is empty.
func requireFlags(fs *flag.FlagSet, names ...string) error {
	for _, name := range names {
		if f := fs.Lookup(name); f != nil && strings.TrimSpace(f.Value.String()) == "" {
			return fmt.Errorf("%w: -%s", ErrMissingFlag, name)
		}
	}
	return nil
}

// isSet reports whether the flag was given on the command line, even empty.
func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
