package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bookstore/catalog"
	"bookstore/cli"
	"bookstore/config"
	"bookstore/logger"
	"bookstore/seed"
)

type options struct {
	configPath string
	seed       bool
	records    int
	logLevel   string
	noColor    bool
}

// NewRootCmd builds the bookstore command. The REPL reads from the command's input and
// writes to its output, so it can be driven from tests.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "bookstore",
		Short: "Interactive in-memory bookstore catalog",
		Long: "Bookstore keeps a catalog of books in an in-memory binary search tree keyed by ISBN " +
			"and lets you add, delete, search and list them from an interactive prompt.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to an INI configuration file.")
	flags.BoolVar(&opts.seed, "seed", false, "Seed the catalog with books created with go-faker.")
	flags.IntVar(&opts.records, "records", 1000, "Amount of random books to seed the catalog with when --seed is set.")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error). Overrides the config file.")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output.")
	return cmd
}

// Execute runs the root command against the process's standard streams.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig loads the config file and lets explicitly set flags win over it.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if opts.seed {
		if opts.records < 0 {
			return nil, errors.Errorf("--records must not be negative, got %d", opts.records)
		}
		cfg.SeedRandom = opts.records
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if opts.noColor {
		cfg.Color = false
	}
	return cfg, nil
}

func run(cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	log := logger.New(errOut, cfg.LogLevel)

	books := catalog.New(log)
	defer books.Close()

	seedCatalog(books, cfg, log)

	scanner := bufio.NewScanner(in)
	demo := cli.NewCli(scanner, out, books, cfg.Color)
	demo.Start()
	return scanner.Err()
}

func seedCatalog(books *catalog.Catalog, cfg *config.Config, log logrus.FieldLogger) {
	if cfg.SeedClassics {
		added := books.Load(catalog.Classics())
		log.WithField("count", added).Info("loaded classic books")
	}
	if cfg.SeedRandom > 0 {
		added := books.Load(seed.Books(cfg.SeedRandom))
		log.WithField("count", added).Info("seeded random books")
	}
}
