package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meridianvc/dealscope/internal/scrape"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Fetch a website's text content and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher := scrape.NewTextFetcher(
			scrape.WithTimeout(time.Duration(cfg.Scrape.TimeoutSecs) * time.Second),
		)
		fmt.Println(fetcher.FetchText(cmd.Context(), args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
