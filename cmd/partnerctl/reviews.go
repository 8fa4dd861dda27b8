package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/vijayguhan10/fourtrip-partner/internal/store"
)

func (app *application) runReviews(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reviews", flag.ContinueOnError)
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

	reviews, err := app.store.Reviews.List(ctx, sess.Role.BusinessType(), businessID)
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		fmt.Println("No reviews yet.")
		return nil
	}

	fmt.Printf("%d reviews, average rating %.1f\n\n", len(reviews), store.AverageRating(reviews))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RATING\tTITLE\tCUSTOMER\tCOMMENT")
	for _, r := range reviews {
		fmt.Fprintf(w, "%.1f\t%s\t%s\t%s\n", r.Rating, r.Title, r.Booking.Name, r.Description)
	}
	return w.Flush()
}
