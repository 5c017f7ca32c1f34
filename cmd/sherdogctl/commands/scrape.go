package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/padraicbc/sherdogapi/config"
	"github.com/padraicbc/sherdogapi/sherdog"
)

var scrapeTable *bool

func init() {
	scrapeTable = scrapeCmd.Flags().Bool("table", false, "Print the record as a table instead of JSON.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:       "scrape <promotion|event|fighter> <id> [--table]",
	Short:     "Scrapes a single record from sherdog.com, bypassing the cache.",
	Args:      cobra.ExactArgs(2),
	ValidArgs: objectTypes,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}

		cfg := config.Load()
		s := sherdog.New(
			sherdog.NewHTTPFetcher(sherdog.HTTPFetcherOptions{
				UserAgent: cfg.UserAgent,
				Timeout:   cfg.FetchTimeout,
			}),
			sherdog.Options{BaseURL: cfg.BaseURL},
		)

		ctx := cmd.Context()
		var record interface{}
		switch args[0] {
		case "promotion":
			record, err = s.Promotion(ctx, id)
		case "event":
			record, err = s.Event(ctx, id)
		case "fighter":
			record, err = s.Fighter(ctx, id)
		default:
			return fmt.Errorf("unknown object type %q", args[0])
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if *scrapeTable {
			return renderTable(out, record)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	},
}
