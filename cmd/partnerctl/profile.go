package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/vijayguhan10/fourtrip-partner/internal/store"
)

func (app *application) runProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "show":
		return app.showProfile(ctx)
	case "update":
		return app.updateProfile(ctx, rest)
	case "allow-bookings":
		return app.toggleReservations(ctx)
	case "password":
		return app.changePassword(ctx)
	}
	return fmt.Errorf("unknown profile subcommand %q", sub)
}

func (app *application) showProfile(ctx context.Context) error {
	profile, err := app.store.Auth.Profile(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Business\t%s\n", profile.BusinessName)
	fmt.Fprintf(w, "Owner\t%s\n", profile.OwnerName)
	fmt.Fprintf(w, "Email\t%s\n", profile.Email)
	fmt.Fprintf(w, "Phone\t%s\n", profile.PhoneNumber)
	fmt.Fprintf(w, "Address\t%s, %s %s\n", profile.Address, profile.City, profile.Pincode)
	fmt.Fprintf(w, "Hours\t%s %s-%s\n", strings.Join(profile.BusinessHours.Days, ","),
		profile.BusinessHours.OpeningTime, profile.BusinessHours.ClosingTime)
	fmt.Fprintf(w, "Accepting bookings\t%t\n", profile.CanReserve)
	return w.Flush()
}

// updateProfile applies -set name=value pairs as a partial update, plus the
// business-hours convenience flags.
func (app *application) updateProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile update", flag.ContinueOnError)
	patch := store.ProfilePatch{}
	fs.Func("set", "field assignment name=value (repeatable)", func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("bad -set %q, want name=value", s)
		}
		patch[strings.TrimSpace(name)] = value
		return nil
	})
	days := fs.String("days", "", "open days, comma separated")
	opening := fs.String("open", "", "opening time")
	closing := fs.String("close", "", "closing time")
	logoPath := fs.String("logo", "", "logo image file to upload")
	imagePaths := fs.String("images", "", "business image files to upload, comma separated")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := app.activeSession()
	if err != nil {
		return err
	}

	if *days != "" || *opening != "" || *closing != "" {
		patch["businessHours"] = store.BusinessHours{
			Days:        splitArg(*days),
			OpeningTime: *opening,
			ClosingTime: *closing,
		}
	}

	// the owner name doubles as the account name
	if owner, ok := patch["owner_name"]; ok {
		patch["name"] = owner
	}

	if *logoPath != "" {
		f, err := os.Open(*logoPath)
		if err != nil {
			return fmt.Errorf("open logo: %w", err)
		}
		url, uploadErr := app.store.Uploads.Upload(ctx, *logoPath, f)
		f.Close()
		if uploadErr != nil {
			return uploadErr
		}
		patch["logo_url"] = url
	}

	if *imagePaths != "" {
		urls, err := app.uploadProfileImages(ctx, splitArg(*imagePaths))
		if err != nil {
			return err
		}
		patch["image_url"] = urls
	}

	if len(patch) == 0 {
		return fmt.Errorf("nothing to update")
	}

	if err := app.store.Auth.UpdateProfile(ctx, sess.PartnerID, patch); err != nil {
		return err
	}
	fmt.Println("Profile updated.")
	return nil
}

func (app *application) uploadProfileImages(ctx context.Context, paths []string) ([]string, error) {
	var files []store.File
	var open []*os.File
	defer func() {
		for _, f := range open {
			f.Close()
		}
	}()

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open image: %w", err)
		}
		open = append(open, f)
		files = append(files, store.File{Name: path, Reader: f})
	}

	result, err := app.store.Uploads.UploadAll(ctx, files)
	if err != nil {
		return nil, err
	}
	fmt.Printf("%d of %d images uploaded.\n", result.Uploaded, result.Uploaded+result.Failed)
	return result.URLs, nil
}

// toggleReservations flips whether new reservations are accepted.
func (app *application) toggleReservations(ctx context.Context) error {
	sess, err := app.activeSession()
	if err != nil {
		return err
	}
	profile, err := app.store.Auth.Profile(ctx)
	if err != nil {
		return err
	}

	next := !profile.CanReserve
	patch := store.ProfilePatch{"canReserve": next}
	if err := app.store.Auth.UpdateProfile(ctx, sess.PartnerID, patch); err != nil {
		return err
	}
	if next {
		fmt.Println("New reservations are now allowed.")
	} else {
		fmt.Println("New reservations are now blocked.")
	}
	return nil
}

func (app *application) changePassword(ctx context.Context) error {
	sess, err := app.activeSession()
	if err != nil {
		return err
	}

	current, err := promptPassword("Current password: ")
	if err != nil {
		return err
	}
	next, err := promptPassword("New password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm new password: ")
	if err != nil {
		return err
	}
	// mismatches never reach the backend
	if next != confirm {
		return fmt.Errorf("passwords do not match")
	}
	if current == "" || next == "" {
		return fmt.Errorf("both current and new password are required")
	}

	patch := store.ProfilePatch{
		"currentPassword": current,
		"newPassword":     next,
	}
	if err := app.store.Auth.UpdateProfile(ctx, sess.PartnerID, patch); err != nil {
		return err
	}
	fmt.Println("Password changed.")
	return nil
}
