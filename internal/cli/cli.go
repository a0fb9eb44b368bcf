// Package cli provides the command-line interface for the TypeScript generator.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/spf13/cobra"

	"github.com/GabrielNunesIT/swagger-ts-gen/internal/adapters/fetcher"
	"github.com/GabrielNunesIT/swagger-ts-gen/internal/adapters/formatters"
	"github.com/GabrielNunesIT/swagger-ts-gen/internal/adapters/sink"
	"github.com/GabrielNunesIT/swagger-ts-gen/internal/config"
	"github.com/GabrielNunesIT/swagger-ts-gen/internal/domain"
	"github.com/GabrielNunesIT/swagger-ts-gen/internal/generator"
)

// projectRoot is where style configs are looked up and prettier runs.
const projectRoot = "."

// CLI holds the command-line interface configuration.
type CLI struct {
	log        logger.ILogger
	rootCmd    *cobra.Command
	configFile string
	swaggerURL string
	outputPath string
	formatter  string
	force      bool
}

// New creates a new CLI instance.
func New(log logger.ILogger) *CLI {
	cli := &CLI{
		log: log,
	}

	cli.rootCmd = &cobra.Command{
		Use:           "swagger-ts-gen",
		Short:         "Generate TypeScript interfaces and request functions from a Swagger document",
		Long:          "A CLI tool that fetches a Swagger 2.0 document and writes one TypeScript file per tag, holding the interfaces and POST request functions of that tag.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cli.run,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter " + config.DefaultFile,
		Args:  cobra.NoArgs,
		RunE:  cli.runInit,
	}
	initCmd.Flags().BoolVar(&cli.force, "force", false, "Overwrite an existing config file")

	cli.rootCmd.AddCommand(initCmd)
	cli.setupFlags()

	return cli
}

func (c *CLI) setupFlags() {
	c.rootCmd.PersistentFlags().StringVarP(&c.configFile, "config", "c", config.DefaultFile, "Path to the config file")
	c.rootCmd.Flags().StringVarP(&c.swaggerURL, "url", "u", "", "Swagger document URL (overrides swaggerUrl)")
	c.rootCmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Output directory (overrides outputPath)")
	c.rootCmd.Flags().StringVarP(&c.formatter, "formatter", "f", "", "Formatter: builtin, prettier, none")
}

// Execute runs the CLI.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

func (c *CLI) run(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	c.log.Infof("Loading Swagger document from: %s", cfg.SwaggerURL)

	doc, err := c.loadSwagger(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	result, err := generator.Generate(doc, generator.Options{RequestModule: cfg.RequestModule})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if skipped := result.Aggregation.Untagged; len(skipped) > 0 {
		c.log.Infof("Skipped untagged paths: %s", strings.Join(skipped, ", "))
	}
	if undeclared := result.Aggregation.UndeclaredTags; len(undeclared) > 0 {
		c.log.Infof("Tags missing from the tag list: %s", strings.Join(undeclared, ", "))
	}

	formatter, err := c.getFormatter(cfg.Formatter)
	if err != nil {
		return err
	}

	c.log.Infof("Formatting with %s...", formatter.Name())

	out := sink.NewFileSink(cfg.OutputPath, c.log)
	if err := out.Prepare(); err != nil {
		return err
	}

	for _, file := range result.Files {
		content, err := formatter.Format(cmd.Context(), file.Name, file.Content)
		if err != nil {
			return fmt.Errorf("failed to format %s: %w", file.Name, err)
		}

		file.Content = content
		if err := out.Write(file); err != nil {
			return err
		}
	}

	c.log.Infof("Successfully generated %d files declaring %d types in: %s", len(result.Files), len(result.Registry.Refs()), out.Dir())

	return nil
}

func (c *CLI) runInit(_ *cobra.Command, _ []string) error {
	if err := config.WriteDefault(c.configFile, c.force); err != nil {
		return err
	}

	c.log.Infof("Config file created at: %s", c.configFile)

	return nil
}

// loadConfig applies explicitly set flags over the loaded config and validates it.
func (c *CLI) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(c.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.SwaggerURL = c.swaggerURL
	}
	if flags.Changed("output") {
		cfg.OutputPath = c.outputPath
	}
	if flags.Changed("formatter") {
		cfg.Formatter = strings.ToLower(c.formatter)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *CLI) loadSwagger(ctx context.Context, cfg *config.Config) (*domain.Document, error) {
	client := fetcher.NewHTTPFetcher(
		fetcher.WithTimeout(cfg.RequestTimeout()),
		fetcher.WithMaxRetries(cfg.Retries),
		fetcher.WithLogger(c.log),
	)

	data, err := client.Fetch(ctx, cfg.SwaggerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Swagger document: %w", err)
	}

	doc, err := domain.ParseDocument(data)
	if err != nil {
		return nil, err
	}

	c.log.Infof("Loaded API: %s (v%s)", doc.Info.Title, doc.Info.Version)

	if !doc.SupportedVersion() {
		c.log.Errorf("Document declares swagger %q, expected 2.0; generating anyway", doc.Swagger)
	}

	return doc, nil
}

func (c *CLI) getFormatter(name string) (domain.Formatter, error) {
	switch name {
	case "builtin":
		return formatters.NewBuiltinFormatter(c.loadStyle()), nil
	case "prettier":
		return formatters.NewPrettierFormatter(c.loadStyle(), projectRoot), nil
	case "none":
		return formatters.NoopFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported formatter: %s (supported: builtin, prettier, none)", name)
	}
}

func (c *CLI) loadStyle() formatters.StyleConfig {
	style, err := formatters.LoadStyleConfig(projectRoot)
	if err != nil {
		c.log.Errorf("Ignoring style config: %v", err)
	}

	return style
}
