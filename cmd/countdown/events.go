package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"countdown/internal/display"
	"countdown/internal/export"
	"countdown/internal/models"
	"countdown/internal/structures"
)

var dateLayouts = []struct {
	layout string
	allDay bool
}{
	{time.RFC3339, false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04", false},
	{"2006-01-02", true},
}

// parseDate accepts RFC 3339, a local date-time, or a bare date. A bare
// date is reported as all-day.
func parseDate(s string, loc *time.Location) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		if t, err := time.ParseInLocation(l.layout, s, loc); err == nil {
			return t, l.allDay, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("cannot parse date %q, use YYYY-MM-DD or YYYY-MM-DD HH:MM", s)
}

func parseIndices(args []string) ([]int, error) {
	indices, err := cast.ToIntSliceE(args)
	if err != nil {
		return nil, fmt.Errorf("indices must be integers: %w", err)
	}
	return indices, nil
}

func newListCmd(flags *structures.CliFlags) *cobra.Command {
	var (
		lang string
		full bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show all events with the time left",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			if lang == "" {
				lang = rt.Conf.Display.Language
			}
			printCards(cmd.OutOrStdout(), rt.Store.Events(), time.Now(), lang, full)
			return nil
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Display language (en, de)")
	cmd.Flags().BoolVarP(&full, "full", "f", false, "Include seconds")
	return cmd
}

func printCards(w io.Writer, events []models.Event, now time.Time, lang string, full bool) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events.")
		return
	}
	fmt.Fprintln(w, display.RenderCards(events, now, lang, full))
}

func newAddCmd(flags *structures.CliFlags) *cobra.Command {
	var (
		date         string
		allDay       bool
		color        string
		imagePath    string
		search       string
		suggestColor bool
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create an event at the top of the list",
		Long: `Create an event at the top of the list.

A date without a time (YYYY-MM-DD) makes an all-day event counting down to
local midnight. --search fetches a photo for the query (the title when the
query is empty) and keeps a local copy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				return errors.New("--date is required")
			}
			when, dateOnly, err := parseDate(date, time.Local)
			if err != nil {
				return err
			}

			rt, err := openRuntime(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			req := models.CreateEventRequest{
				Title:           args[0],
				Date:            when,
				AllDay:          allDay || dateOnly,
				BackgroundColor: color,
				SuggestColor:    suggestColor,
			}

			if imagePath != "" {
				if req.Image, err = os.ReadFile(imagePath); err != nil {
					return err
				}
			} else if cmd.Flags().Changed("search") {
				query := search
				if strings.TrimSpace(query) == "" {
					query = args[0]
				}
				suggestion, data, err := rt.Photos.Fetch(cmd.Context(), query)
				if err != nil {
					return fmt.Errorf("photo search: %w", err)
				}
				req.Image = data
				if color == "" {
					req.BackgroundColor = suggestion.BackgroundColor
				}
			}

			event, err := rt.Factory.Create(req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), display.RenderCard(0, event, time.Now(), rt.Conf.Display.Language, false))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Target date, YYYY-MM-DD or YYYY-MM-DD HH:MM (local time)")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "Count down to midnight of the date")
	cmd.Flags().StringVar(&color, "color", "", "Background color as hex, e.g. #2A9D8F")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to a JPEG, PNG or GIF to attach")
	cmd.Flags().StringVar(&search, "search", "", "Search a photo online for this query")
	cmd.Flags().BoolVar(&suggestColor, "suggest-color", false, "Use the average color of the image as background")
	return cmd
}

func newRemoveCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>...",
		Short: "Delete events by their list position",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices, err := parseIndices(args)
			if err != nil {
				return err
			}

			rt, err := openRuntime(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			before := rt.Store.Len()
			rt.Store.Remove(indices)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d of %d events.\n", before-rt.Store.Len(), before)
			return nil
		},
	}
}

func newMoveCmd(flags *structures.CliFlags) *cobra.Command {
	var to int
	cmd := &cobra.Command{
		Use:   "move <index>... --to <position>",
		Short: "Move events before the event currently at --to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices, err := parseIndices(args)
			if err != nil {
				return err
			}

			rt, err := openRuntime(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			rt.Store.Move(indices, to)
			for i, e := range rt.Store.Events() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %s\n", i, e.Title)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&to, "to", 0, "Destination position in the current list")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newExportCmd(flags *structures.CliFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export-ics",
		Short: "Write all events as an iCalendar file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return export.WriteICS(w, rt.Store.Events(), time.Now())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (stdout when empty)")
	return cmd
}

func newRestoreCmd(flags *structures.CliFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace the event list with a quarantined or repaired document",
		Long: "Reads a <document>.corrupt-<time>.zst copy, or a plain JSON file, and makes it the event list.\n" +
			"With --out the decompressed document is written there instead, for repair by hand.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			if out != "" {
				data, err := rt.Unpack(args[0])
				if err != nil {
					return err
				}
				if out == "-" {
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}
				return os.WriteFile(out, data, 0o600)
			}

			n, err := rt.Recover(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d events.\n", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the decompressed document here (- for stdout) and leave the list untouched")
	return cmd
}
