package cmd

import (
	"fmt"

	"archive-reporter/core/config"
	"archive-reporter/core/database"
	"archive-reporter/core/logger"
	"archive-reporter/core/storage"
	"archive-reporter/feature/report"
	"archive-reporter/feature/report/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reportLimit int
	reportAll   bool
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Inspect reconciliation reports from the command line",
	Long:  `Read-only access to the reconciliation data store without starting the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// schemaVersionCmd represents the report schema-version command
var schemaVersionCmd = &cobra.Command{
	Use:   "schema-version",
	Short: "Print the installed reconciliation schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newReportService()
		if err != nil {
			return err
		}

		version, err := svc.SchemaVersion(cmd.Context())
		if err != nil {
			return fmt.Errorf("schema version probe failed: %w", err)
		}

		fmt.Printf("schema version: %d\n", version)
		return nil
	},
}

// mismatchesCmd represents the report mismatches command
var mismatchesCmd = &cobra.Command{
	Use:   "mismatches <job_id>",
	Short: "List mismatch records for a reconciliation job",
	Long:  `Walks the mismatch report for a job page by page and prints one line per record.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var jobID int64
		if _, err := fmt.Sscanf(args[0], "%d", &jobID); err != nil {
			return fmt.Errorf("job_id must be an integer: %q", args[0])
		}

		svc, err := newReportService()
		if err != nil {
			return err
		}

		cursor := models.Cursor{JobID: jobID}
		total := 0
		for {
			page, err := svc.MismatchPage(cmd.Context(), cursor, models.DirectionNext, reportLimit)
			if err != nil {
				return fmt.Errorf("mismatch page failed: %w", err)
			}
			if len(page) == 0 {
				break
			}

			for _, m := range page {
				fmt.Printf("%s/%s %s [%s] %s\n",
					m.CollectionID, m.GranuleID, m.KeyPath, m.DiscrepancyType, m.Filename)
			}
			total += len(page)

			if !reportAll {
				break
			}
			cursor = page[len(page)-1].Cursor()
		}

		fmt.Printf("%d mismatches\n", total)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(schemaVersionCmd, mismatchesCmd)

	mismatchesCmd.Flags().IntVar(&reportLimit, "limit", 100, "Rows per page")
	mismatchesCmd.Flags().BoolVar(&reportAll, "all", false, "Walk every page instead of only the first")
}

// newReportService builds a report service from local configuration the same
// way the server does, minus the HTTP surface.
func newReportService() (*report.Service, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	logg.Info("Connected to reconciliation database", zap.String("name", cfg.Database.Name))

	return report.NewFeature(db, client, cfg.Storage.Bucket, logg).Service(), nil
}
