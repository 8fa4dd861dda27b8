package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
)

func (app *application) runLocations(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("locations", flag.ContinueOnError)
	query := fs.String("q", "", "filter locations by name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	locations, err := app.store.Locations.Search(ctx, *query)
	if err != nil {
		return err
	}
	if len(locations) == 0 {
		fmt.Println("No locations found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE")
	for _, l := range locations {
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.ID, l.Name, l.Type)
	}
	return w.Flush()
}
