package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/vijayguhan10/fourtrip-partner/internal/session"
)

func (app *application) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	role := fs.String("role", "restaurant", "partner role: restaurant, shop or activities")
	phone := fs.String("phone", "", "registered phone number")
	password := fs.String("password", "", "password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := session.ParseRole(*role)
	if err != nil {
		return err
	}
	if *phone == "" {
		return fmt.Errorf("login requires -phone")
	}

	pass := *password
	if pass == "" {
		if pass, err = promptPassword("Password: "); err != nil {
			return err
		}
	}

	result, err := app.store.Auth.Login(ctx, *phone, pass, r)
	if err != nil {
		return err
	}
	if err := app.session.Start(r, result.Token, result.PartnerID); err != nil {
		return err
	}

	// the scoping id for listings comes from the profile, not the login
	profile, err := app.store.Auth.Profile(ctx)
	if err != nil {
		app.logger.Warnw("signed in but profile fetch failed", "error", err)
	} else if profile.RoleID != "" {
		if err := app.session.SetBusinessID(profile.RoleID); err != nil {
			return err
		}
	}

	app.logger.Infow("signed in", "role", r, "partner", result.PartnerID)
	fmt.Printf("Signed in as %s partner.\n", r.Label())
	return nil
}

func (app *application) runLogout(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, ok := app.session.Resolve()
	if !ok {
		fmt.Println("Not signed in.")
		return nil
	}
	if err := app.session.End(sess.Role); err != nil {
		return err
	}
	fmt.Printf("Signed out of %s.\n", sess.Role.Label())
	return nil
}

// activeSession resolves the current login or tells the user to sign in.
func (app *application) activeSession() (session.Session, error) {
	sess, ok := app.session.Resolve()
	if !ok {
		return session.Session{}, fmt.Errorf("not signed in; run partnerctl login first")
	}
	return sess, nil
}

// businessID returns the cached scoping id written at login.
func (app *application) businessID() (string, error) {
	if id, ok := app.session.BusinessID(); ok {
		return id, nil
	}
	return "", fmt.Errorf("no business id cached; run partnerctl login again")
}

// promptPassword reads a password from the terminal without echoing.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
