package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/success-predictor/internal/behavior"
	"github.com/jonathan/success-predictor/internal/config"
	"github.com/jonathan/success-predictor/internal/db"
)

var recordCommand = &cobra.Command{
	Use:   "record",
	Short: "Record an application event for behavior history",
	Long: `Stores one application event (job, timing, channel) in the history database.
Recorded events feed the behavioral feature group of future predictions for the user.`,
	RunE: runRecordCmd,
}

var (
	recordUserID      string
	recordJobID       string
	recordPostedAt    string
	recordAppliedAt   string
	recordMethod      string
	recordCVOptimized bool
	recordSessions    int
	recordDatabaseURL string
)

func init() {
	recordCommand.Flags().StringVarP(&recordUserID, "user-id", "u", "", "User identifier (required)")
	recordCommand.Flags().StringVar(&recordJobID, "job-id", "", "Job identifier (required)")
	recordCommand.Flags().StringVar(&recordPostedAt, "posted-at", "", "When the job was posted, RFC 3339 (required)")
	recordCommand.Flags().StringVar(&recordAppliedAt, "applied-at", "", "When the application was submitted, RFC 3339 (defaults to now)")
	recordCommand.Flags().StringVar(&recordMethod, "method", "platform", "Application channel: platform, email, direct, or referral")
	recordCommand.Flags().BoolVar(&recordCVOptimized, "cv-optimized", false, "Whether the CV was tailored for this job")
	recordCommand.Flags().IntVar(&recordSessions, "sessions", 0, "Platform sessions in the 30 days before applying")
	recordCommand.Flags().StringVar(&recordDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	_ = recordCommand.MarkFlagRequired("user-id")
	_ = recordCommand.MarkFlagRequired("job-id")
	_ = recordCommand.MarkFlagRequired("posted-at")

	rootCmd.AddCommand(recordCommand)
}

func runRecordCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	rec, err := parseUsageRecord(recordJobID, recordPostedAt, recordAppliedAt, recordMethod, recordCVOptimized, recordSessions)
	if err != nil {
		return err
	}

	cfg := config.Config{DatabaseURL: recordDatabaseURL}
	cfg.FromEnv()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.RecordApplication(ctx, recordUserID, rec); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Recorded application to %s for user %s\n", rec.JobID, recordUserID)
	return nil
}

// parseUsageRecord validates the record flags into a usage record.
func parseUsageRecord(jobID, postedAt, appliedAt, method string, cvOptimized bool, sessions int) (behavior.UsageRecord, error) {
	posted, err := time.Parse(time.RFC3339, postedAt)
	if err != nil {
		return behavior.UsageRecord{}, fmt.Errorf("invalid --posted-at %q: %w", postedAt, err)
	}

	applied := time.Now()
	if appliedAt != "" {
		applied, err = time.Parse(time.RFC3339, appliedAt)
		if err != nil {
			return behavior.UsageRecord{}, fmt.Errorf("invalid --applied-at %q: %w", appliedAt, err)
		}
	}
	if applied.Before(posted) {
		return behavior.UsageRecord{}, fmt.Errorf("--applied-at precedes --posted-at")
	}

	method = strings.ToLower(method)
	switch method {
	case "platform", "email", "direct", "referral":
	default:
		return behavior.UsageRecord{}, fmt.Errorf("unknown --method %q (want platform, email, direct, or referral)", method)
	}

	if sessions < 0 {
		return behavior.UsageRecord{}, fmt.Errorf("--sessions must be non-negative")
	}

	return behavior.UsageRecord{
		JobID:       jobID,
		PostedAt:    posted,
		AppliedAt:   applied,
		Method:      method,
		CVOptimized: cvOptimized,
		Sessions:    sessions,
	}, nil
}
