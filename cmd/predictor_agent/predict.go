package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/success-predictor/internal/config"
	"github.com/jonathan/success-predictor/internal/db"
	"github.com/jonathan/success-predictor/internal/fetch"
	"github.com/jonathan/success-predictor/internal/llm"
	"github.com/jonathan/success-predictor/internal/observability"
	"github.com/jonathan/success-predictor/internal/prediction"
	"github.com/jonathan/success-predictor/internal/schemas"
	"github.com/jonathan/success-predictor/internal/types"
)

var predictCommand = &cobra.Command{
	Use:   "predict",
	Short: "Score a job application and print the full prediction",
	Long: `Extracts features from a CV and job posting, runs the outcome predictors,
and prints interview/offer/hire probabilities, salary and timeline estimates,
competitiveness, and improvement recommendations.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPredictCmd,
}

var (
	predictConfigPath      string
	predictCV              string
	predictJob             string
	predictJobURL          string
	predictUserID          string
	predictJobID           string
	predictTargetRole      string
	predictIndustry        string
	predictLocation        string
	predictScoringEndpoint string
	predictScoringAPIKey   string
	predictAPIKey          string
	predictDatabaseURL     string
	predictJSON            bool
	predictVerbose         bool
)

func init() {
	// Config file flag (processed first)
	predictCommand.Flags().StringVar(&predictConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	predictCommand.Flags().StringVar(&predictCV, "cv", "", "Path to structured CV JSON file")
	predictCommand.Flags().StringVarP(&predictJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	predictCommand.Flags().StringVar(&predictJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	predictCommand.Flags().StringVarP(&predictUserID, "user-id", "u", "", "User identifier for behavior history and caching")
	predictCommand.Flags().StringVar(&predictJobID, "job-id", "", "Job identifier (generated if not provided)")
	predictCommand.Flags().StringVar(&predictTargetRole, "target-role", "", "Role title being applied for")
	predictCommand.Flags().StringVar(&predictIndustry, "industry", "", "Industry of the target job")
	predictCommand.Flags().StringVar(&predictLocation, "location", "", "Job location (\"remote\" or a city)")
	predictCommand.Flags().BoolVar(&predictJSON, "json", false, "Print the prediction as JSON instead of formatted boxes")
	predictCommand.Flags().BoolVarP(&predictVerbose, "verbose", "v", false, "Print extracted features alongside the prediction")

	// Remote services are all optional; the heuristic path needs none of them
	predictCommand.Flags().StringVar(&predictScoringEndpoint, "scoring-endpoint", "", "Remote scoring service base URL (optional, defaults to SCORING_ENDPOINT env var)")
	predictCommand.Flags().StringVar(&predictScoringAPIKey, "scoring-api-key", "", "Bearer token for the scoring service (optional, defaults to SCORING_API_KEY env var)")
	predictCommand.Flags().StringVar(&predictAPIKey, "api-key", "", "Gemini API Key for recommendation polish (optional, defaults to GEMINI_API_KEY env var)")
	predictCommand.Flags().StringVar(&predictDatabaseURL, "db-url", "", "PostgreSQL connection URL for application history (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(predictCommand)
}

func runPredictCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolvePredictConfig(cmd)
	if err != nil {
		return err
	}

	req, err := buildRequest(ctx, cfg)
	if err != nil {
		return err
	}

	engine, cleanup, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintFeatureVector(engine.ExtractFeatures(ctx, req))
	}

	pred, err := engine.PredictSuccess(ctx, req)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	if cfg.Verbose || !predictJSON {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintPrediction(pred)
		printer.PrintRecommendations(pred.Recommendations)
	}
	if predictJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(pred); err != nil {
			return fmt.Errorf("failed to encode prediction: %w", err)
		}
	}

	return nil
}

// resolvePredictConfig merges config file, CLI flags and environment into one
// validated Config. CLI flags take priority over file values.
func resolvePredictConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if predictConfigPath != "" {
		loadedCfg, err := config.LoadConfig(predictConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if predictVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", predictConfigPath)
		}
	}

	// Apply CLI overrides; only override if the flag was explicitly set
	if cmd.Flags().Changed("cv") {
		cfg.CV = predictCV
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = predictJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = predictJobURL
	}
	if cmd.Flags().Changed("user-id") {
		cfg.UserID = predictUserID
	}
	if cmd.Flags().Changed("job-id") {
		cfg.JobID = predictJobID
	}
	if cmd.Flags().Changed("target-role") {
		cfg.TargetRole = predictTargetRole
	}
	if cmd.Flags().Changed("industry") {
		cfg.Industry = predictIndustry
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = predictLocation
	}
	if cmd.Flags().Changed("scoring-endpoint") {
		cfg.ScoringEndpoint = predictScoringEndpoint
	}
	if cmd.Flags().Changed("scoring-api-key") {
		cfg.ScoringAPIKey = predictScoringAPIKey
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = predictAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = predictDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = predictVerbose
	}

	// Environment fills whatever is still empty
	cfg.FromEnv()

	// Validate required fields
	if cfg.CV == "" {
		return cfg, fmt.Errorf("--cv is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return cfg, fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return cfg, fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}
	if cfg.UserID == "" {
		return cfg, fmt.Errorf("--user-id is required (via flag or config)")
	}
	if cfg.JobID == "" {
		cfg.JobID = uuid.NewString()
	}

	return cfg, nil
}

// buildRequest loads and validates the CV, resolves the job description text,
// and assembles the prediction request.
func buildRequest(ctx context.Context, cfg config.Config) (*types.PredictionRequest, error) {
	cv, err := loadCV(cfg.CV)
	if err != nil {
		return nil, err
	}

	jobText, err := resolveJobDescription(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &types.PredictionRequest{
		UserID:         cfg.UserID,
		JobID:          cfg.JobID,
		CV:             cv,
		JobDescription: jobText,
		TargetRole:     cfg.TargetRole,
		Industry:       cfg.Industry,
		Location:       cfg.Location,
	}, nil
}

// loadCV reads a CV JSON file, checks it against the schema, and decodes it.
func loadCV(path string) (*types.CV, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV file %s: %w", path, err)
	}

	if err := schemas.ValidateCV(string(data)); err != nil {
		return nil, err
	}

	var cv types.CV
	if err := json.Unmarshal(data, &cv); err != nil {
		return nil, fmt.Errorf("failed to parse CV JSON: %w", err)
	}
	return &cv, nil
}

// resolveJobDescription returns the job posting text, from a local file or by
// fetching and extracting the URL.
func resolveJobDescription(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file %s: %w", cfg.Job, err)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			return "", fmt.Errorf("job file %s is empty", cfg.Job)
		}
		return text, nil
	}

	client := fetch.NewClient(0)
	text, err := client.JobDescription(ctx, cfg.JobURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return text, nil
}

// buildEngine wires the optional external services into a prediction engine.
// The returned cleanup closes whatever was opened.
func buildEngine(ctx context.Context, cfg config.Config) (*prediction.Engine, func(), error) {
	engineCfg := prediction.Config{
		ScoringEndpoint: cfg.ScoringEndpoint,
		ScoringAPIKey:   cfg.ScoringAPIKey,
	}

	var closers []func()
	cleanup := func() {
		for _, fn := range closers {
			fn()
		}
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		closers = append(closers, database.Close)
		engineCfg.UsageStore = database
	}

	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		closers = append(closers, func() { _ = client.Close() })
		engineCfg.LLMClient = client
	}

	engine := prediction.NewEngine(engineCfg)
	closers = append(closers, engine.Close)
	return engine, cleanup, nil
}
