package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sells-group/county-mortality-cli/internal/fetcher"
	"github.com/sells-group/county-mortality-cli/internal/source"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Check connectivity to every data source",
	Long:  "Queries each configured source and reports row counts without running the analysis.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		attrSrc, deathsSrc, closeDB, err := openSources(ctx, cfg)
		if err != nil {
			return err
		}

		attrs, err := attrSrc.CountyAttributes(ctx)
		if err != nil {
			closeDB()
			return err
		}
		deaths, err := deathsSrc.CountyDeaths(ctx, cfg.Analysis.SnapshotDate)
		closeDB()
		if err != nil {
			return err
		}

		income, err := source.NewIncomeWorkbook(
			cfg.Income.WorkbookPath, cfg.Income.SheetName, cfg.Income.RegionLabel,
		).NationalMedianIncome(ctx)
		if err != nil {
			return err
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{RateLimiters: fetcher.DefaultRateLimiters()})
		boundaries, err := loadBoundaries(ctx, cfg, f)
		if err != nil {
			return err
		}

		fmt.Printf("county attributes:  %d rows\n", len(attrs))
		fmt.Printf("death snapshot:     %d rows (%s)\n", len(deaths), cfg.Analysis.SnapshotDate)
		fmt.Printf("national income:    $%.0f (%s)\n", income, cfg.Income.RegionLabel)
		fmt.Printf("boundary features:  %d\n", len(boundaries.Features))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
