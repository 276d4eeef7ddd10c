package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"homezy/config"
	"homezy/i18n"
	"homezy/models"
	"homezy/services/auth"
	"homezy/services/notification"

	"go.uber.org/zap"
)

// CLI drives the login and register forms from the command line.
type CLI struct {
	Config config.Config
	Logger *zap.Logger
	Stdout io.Writer
	Stderr io.Writer
}

type UsageError struct {
	Program string
}

func (u UsageError) Error() string {
	if u.Program == "" {
		u.Program = "authctl"
	}
	return fmt.Sprintf("Usage: %s <command> [options]", u.Program)
}

func (UsageError) UsageLines() []string {
	return []string{
		"Commands:",
		"  login     Sign in against the API (-email, -password)",
		"  register  Validate registration details (-full-name, -phone, -email, -password)",
		"Common options:",
		"  -lang     Locale for messages and Accept-Language (" + strings.Join(supportedLocales(), ", ") + ")",
		"  -api-url  API base URL (login only)",
	}
}

func (c *CLI) Run(ctx context.Context, prog string, args []string) error {
	if len(args) < 1 {
		return UsageError{Program: prog}
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	var err error
	switch args[0] {
	case "login":
		err = c.runLogin(ctx, args[1:])
	case "register":
		err = c.runRegister(ctx, args[1:])
	default:
		return UsageError{Program: prog}
	}
	if err != nil {
		fmt.Fprintf(c.Stderr, "error: %v\n", err)
	}
	return err
}

func (c *CLI) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	apiURL := fs.String("api-url", c.Config.APIURL, "API base URL")
	lang := fs.String("lang", c.Config.DefaultLocale, "message locale")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	localizer, err := newLocalizer(*lang)
	if err != nil {
		return err
	}
	client := auth.NewClient(*apiURL, localizer, auth.WithLogger(c.Logger))
	form := auth.NewLoginForm(client, auth.NewValidator(localizer), notification.NewLogNotifier(c.Logger), localizer, c.Logger)

	resp, err := form.Submit(ctx, models.LoginCredentials{Email: *email, Password: *password})
	if err != nil {
		c.printFailure(localizer, err)
		return err
	}
	if !resp.Succeeded() {
		return fmt.Errorf("login refused (%d): %s", resp.StatusCode, resp.Message)
	}
	fmt.Fprintf(c.Stdout, "%s\nid=%s name=%q email=%s\ntoken=%s\n",
		resp.Message, resp.Data.ID, resp.Data.FullName, resp.Data.Email, resp.Data.AccessToken)
	return nil
}

func (c *CLI) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	lang := fs.String("lang", c.Config.DefaultLocale, "message locale")
	fullName := fs.String("full-name", "", "full name")
	phone := fs.String("phone", "", "phone number, 10-11 digits")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	delay := fs.Duration("delay", auth.RegistrationDelay, "how long the form stays busy")
	if err := fs.Parse(args); err != nil {
		return err
	}

	localizer, err := newLocalizer(*lang)
	if err != nil {
		return err
	}
	form := auth.NewRegisterForm(auth.NewValidator(localizer), c.Logger, *delay)
	err = form.Submit(ctx, models.RegistrationDetails{
		FullName: *fullName,
		Phone:    *phone,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		c.printFailure(localizer, err)
		return err
	}
	fmt.Fprintln(c.Stdout, "registration details accepted")
	return nil
}

// printFailure writes the per-field messages of a rejected form, or the
// localized busy notice when a submission is already running.
func (c *CLI) printFailure(localizer *i18n.Localizer, err error) {
	if errors.Is(err, auth.ErrSubmitInFlight) {
		fmt.Fprintf(c.Stderr, "  %s\n", localizer.T(i18n.KeySubmitInFlight))
		return
	}
	var verrs auth.ValidationErrors
	if !errors.As(err, &verrs) {
		return
	}
	fields := make([]string, 0, len(verrs))
	for f := range verrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(c.Stderr, "  %s: %s\n", f, verrs[f])
	}
}

func newLocalizer(lang string) (*i18n.Localizer, error) {
	if _, ok := i18n.Parse(lang); !ok {
		return nil, fmt.Errorf("unsupported -lang %q, want one of %s", lang, strings.Join(supportedLocales(), ", "))
	}
	return i18n.NewLocalizer(lang), nil
}

func supportedLocales() []string {
	locs := i18n.Supported()
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.String()
	}
	return out
}
