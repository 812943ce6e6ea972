// Command notitechctl performs operator tasks directly against the
// notitech database, using the same environment as the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/app"
	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/pkg/cryptox"
	"github.com/aussiebroadwan/notitech/pkg/slogx"
	"golang.org/x/term"
)

// readPassword is swapped out in tests.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return errors.New("missing command")
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "reset-password":
		return commandResetPassword(args, stdout, stderr)
	case "migrate":
		return commandMigrate(stdout, stderr)
	case "purge-codes":
		return commandPurgeCodes(stdout, stderr)
	case "version", "--version", "-v":
		fmt.Fprintln(stdout, app.BuildVersion)
		return nil
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: notitechctl <command> [flags]

Commands:
  reset-password --email EMAIL [--password PASSWORD]
                 Replace a user's password. Prompts when --password is omitted.
  migrate        Apply database migrations.
  purge-codes    Delete expired password reset codes.
  version        Print the build version.
`)
}

// withStorage opens the configured database the way the server does.
func withStorage(stderr io.Writer, fn func(ctx context.Context, st *app.Storage) error) error {
	cfg := app.LoadConfig()
	logger := slogx.New(slogx.Config{
		Service: "notitechctl",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   "warn",
		Format:  "text",
		Output:  stderr,
	})
	cryptox.SetPepperPath(cfg.PepperFile)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(slogx.WithContext(ctx, logger), st)
}

func commandResetPassword(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	fs.SetOutput(stderr)
	email := fs.String("email", "", "Email address of the account")
	password := fs.String("password", "", "New password (supply to avoid prompt)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*email) == "" {
		return errors.New("--email is required")
	}

	secret := *password
	if secret == "" {
		var err error
		if secret, err = promptNewPassword(stdout); err != nil {
			return err
		}
	}

	return withStorage(stderr, func(ctx context.Context, st *app.Storage) error {
		admin := &service.AdminService{Store: st}
		err := admin.ResetPassword(ctx, *email, secret)
		switch {
		case errors.Is(err, service.ErrNotFound):
			return fmt.Errorf("no account for %s", *email)
		case err != nil:
			return err
		}
		fmt.Fprintf(stdout, "password updated for %s\n", *email)
		return nil
	})
}

func promptNewPassword(w io.Writer) (string, error) {
	fmt.Fprint(w, "New password: ")
	first, err := readPassword()
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(w, "Repeat password: ")
	second, err := readPassword()
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}

func commandMigrate(stdout, stderr io.Writer) error {
	// OpenStorage migrates on open.
	return withStorage(stderr, func(ctx context.Context, st *app.Storage) error {
		fmt.Fprintln(stdout, "migrations applied")
		return nil
	})
}

func commandPurgeCodes(stdout, stderr io.Writer) error {
	return withStorage(stderr, func(ctx context.Context, st *app.Storage) error {
		hk := service.NewHousekeepingService(st, slogx.FromContext(ctx), 0)
		n := hk.Cleanup(ctx)
		fmt.Fprintf(stdout, "deleted %d expired reset codes\n", n)
		return nil
	})
}
