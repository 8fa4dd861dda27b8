package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vijayguhan10/fourtrip-partner/internal/session"
	"github.com/vijayguhan10/fourtrip-partner/internal/store"
)

func (app *application) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	role := fs.String("role", "", "partner role: restaurant, shop or activities")
	business := fs.String("business", "", "business name")
	owner := fs.String("owner", "", "owner name")
	email := fs.String("email", "", "contact email")
	phone := fs.String("phone", "", "contact phone number")
	address := fs.String("address", "", "street address")
	city := fs.String("city", "", "city")
	pincode := fs.String("pincode", "", "postal code")
	location := fs.String("location", "", "location id (see partnerctl locations)")
	days := fs.String("days", "", "open days, comma separated")
	opening := fs.String("open", "", "opening time, e.g. 09:00")
	closing := fs.String("close", "", "closing time, e.g. 21:00")
	logoPath := fs.String("logo", "", "logo image file to upload")
	imagePaths := fs.String("images", "", "business image files, comma separated")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := session.ParseRole(*role)
	if err != nil {
		return err
	}

	pass, err := promptPassword("Choose a password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if pass != confirm {
		return fmt.Errorf("passwords do not match")
	}

	payload := store.RegisterPayload{
		Name:         *owner,
		Email:        *email,
		PhoneNumber:  *phone,
		Password:     pass,
		BusinessName: *business,
		OwnerName:    *owner,
		Address:      *address,
		City:         *city,
		Pincode:      *pincode,
		LocationID:   *location,
		BusinessHours: store.BusinessHours{
			Days:        splitArg(*days),
			OpeningTime: *opening,
			ClosingTime: *closing,
		},
	}

	// Registration is unauthenticated, so branding images cannot ride the
	// upload endpoint here; they are attached on the first profile edit.
	if *logoPath != "" || *imagePaths != "" {
		fmt.Fprintln(os.Stderr, "Note: sign in after registering to upload logo and images.")
	}

	if err := app.store.Auth.Register(ctx, r, payload); err != nil {
		return err
	}
	fmt.Printf("Registered %s as a %s partner. Sign in with partnerctl login.\n", *business, r.Label())
	return nil
}
