package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/success-predictor/internal/config"
	"github.com/jonathan/success-predictor/internal/features"
	"github.com/jonathan/success-predictor/internal/observability"
)

var featuresCommand = &cobra.Command{
	Use:   "features",
	Short: "Extract and inspect features without running the predictors",
	Long: `Runs feature extraction for a CV and job posting and prints the resulting
feature vector, its quality report, and the model's feature importance weights.
Useful for debugging why a prediction came out the way it did.`,
	RunE: runFeaturesCmd,
}

var featuresJSON bool

func init() {
	featuresCommand.Flags().StringVar(&predictConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	featuresCommand.Flags().StringVar(&predictCV, "cv", "", "Path to structured CV JSON file")
	featuresCommand.Flags().StringVarP(&predictJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	featuresCommand.Flags().StringVar(&predictJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	featuresCommand.Flags().StringVarP(&predictUserID, "user-id", "u", "", "User identifier for behavior history")
	featuresCommand.Flags().StringVar(&predictJobID, "job-id", "", "Job identifier (generated if not provided)")
	featuresCommand.Flags().StringVar(&predictTargetRole, "target-role", "", "Role title being applied for")
	featuresCommand.Flags().StringVar(&predictIndustry, "industry", "", "Industry of the target job")
	featuresCommand.Flags().StringVar(&predictLocation, "location", "", "Job location (\"remote\" or a city)")
	featuresCommand.Flags().StringVar(&predictDatabaseURL, "db-url", "", "PostgreSQL connection URL for application history (optional, defaults to DATABASE_URL env var)")
	featuresCommand.Flags().BoolVar(&featuresJSON, "json", false, "Print the feature vector as JSON instead of formatted boxes")
	featuresCommand.Flags().BoolVarP(&predictVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(featuresCommand)
}

func runFeaturesCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolvePredictConfig(cmd)
	if err != nil {
		return err
	}

	req, err := buildRequest(ctx, cfg)
	if err != nil {
		return err
	}

	engine, cleanup, err := buildEngine(ctx, prunedForFeatures(cfg))
	if err != nil {
		return err
	}
	defer cleanup()

	fv := engine.ExtractFeatures(ctx, req)

	if featuresJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(fv); err != nil {
			return fmt.Errorf("failed to encode feature vector: %w", err)
		}
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintFeatureVector(fv)
	printer.PrintFeatureImportance(features.FeatureImportance())

	report := features.ValidateFeatures(fv)
	_, _ = fmt.Fprintf(os.Stdout, "Feature quality: %.2f", report.QualityScore)
	if len(report.Flags) > 0 {
		_, _ = fmt.Fprintf(os.Stdout, " (flags: %v)", report.Flags)
	}
	_, _ = fmt.Fprintln(os.Stdout)

	return nil
}

// prunedForFeatures drops services feature extraction never touches, so the
// command works without scoring or LLM credentials.
func prunedForFeatures(cfg config.Config) config.Config {
	cfg.ScoringEndpoint = ""
	cfg.ScoringAPIKey = ""
	cfg.APIKey = ""
	return cfg
}
