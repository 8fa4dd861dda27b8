package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/vijayguhan10/fourtrip-partner/internal/store"
)

func (app *application) runBookings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		return app.listBookings(ctx, rest)
	case "status":
		return app.updateBookingStatus(ctx, rest)
	}
	return fmt.Errorf("unknown bookings subcommand %q", sub)
}

func (app *application) listBookings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bookings list", flag.ContinueOnError)
	query := fs.String("q", "", "filter by customer name, email or phone")
	onDate := fs.String("date", "", "only bookings on this date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := app.activeSession()
	if err != nil {
		return err
	}
	businessID, err := app.businessID()
	if err != nil {
		return err
	}

	buckets, err := app.store.Bookings.ListForBusiness(ctx, businessID, sess.Role.BusinessType())
	if err != nil {
		return err
	}

	var day time.Time
	filterByDate := false
	if *onDate != "" {
		if day, err = time.Parse("2006-01-02", *onDate); err != nil {
			return fmt.Errorf("bad -date %q, want YYYY-MM-DD", *onDate)
		}
		filterByDate = true
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tPHONE\tDATE\tGUESTS\tSTATUS")
	printBucket(w, "active", filterBookings(buckets.Active, *query, day, filterByDate))
	printBucket(w, "inactive", filterBookings(buckets.Inactive, *query, day, filterByDate))
	return w.Flush()
}

// filterBookings matches the customer contact fields case-insensitively and
// optionally narrows to a calendar day. Rows whose date cannot be parsed
// stay visible when only the text filter applies to them.
func filterBookings(bookings []store.Booking, query string, day time.Time, byDate bool) []store.Booking {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []store.Booking
	for _, b := range bookings {
		if query != "" && !strings.Contains(strings.ToLower(b.SearchText()), query) {
			continue
		}
		if byDate {
			parsed, ok := b.ParsedDate()
			if ok {
				y1, m1, d1 := parsed.Date()
				y2, m2, d2 := day.Date()
				if y1 != y2 || m1 != m2 || d1 != d2 {
					continue
				}
			}
		}
		out = append(out, b)
	}
	return out
}

func printBucket(w *tabwriter.Writer, label string, bookings []store.Booking) {
	for _, b := range bookings {
		date := b.Date
		if parsed, ok := b.ParsedDate(); ok {
			date = parsed.Format("Mon Jan 2 2006 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s (%s)\n",
			b.ID, b.Customer.Name, b.Customer.PhoneNumber, date, b.Guests, b.Status, label)
	}
}

func (app *application) updateBookingStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bookings status", flag.ContinueOnError)
	id := fs.String("id", "", "reservation id")
	status := fs.String("status", "", "new status: Pending, Confirmed, Completed or Cancelled")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *status == "" {
		return fmt.Errorf("bookings status requires -id and -status")
	}

	switch *status {
	case store.BookingPending, store.BookingConfirmed, store.BookingCompleted, store.BookingCancelled:
	default:
		return fmt.Errorf("unknown status %q", *status)
	}

	if err := app.store.Bookings.UpdateStatus(ctx, *id, *status); err != nil {
		return err
	}
	fmt.Printf("Reservation %s is now %s.\n", *id, *status)
	return nil
}
