package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/meridianvc/dealscope/internal/enrich"
	"github.com/meridianvc/dealscope/internal/model"
	"github.com/meridianvc/dealscope/internal/scrape"
	"github.com/meridianvc/dealscope/pkg/anthropic"
)

var enrichCompanyID string

var enrichCmd = &cobra.Command{
	Use:   "enrich <url>",
	Short: "Enrich a company website and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		fetcher := scrape.NewTextFetcher(
			scrape.WithTimeout(time.Duration(cfg.Scrape.TimeoutSecs) * time.Second),
		)
		enricher := enrich.New(
			fetcher,
			anthropic.NewClient(cfg.Anthropic.Key),
			enrich.NewMemoryCache(),
			cfg.Anthropic,
		)

		result, err := enricher.Enrich(cmd.Context(), model.EnrichmentRequest{
			URL:       args[0],
			CompanyID: enrichCompanyID,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichCompanyID, "company-id", "", "company id for cache attribution")
	rootCmd.AddCommand(enrichCmd)
}
