package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vinifborgess/auto-doc-pbi/internal/config"
)

// options is the fully resolved set of settings for one invocation.
type options struct {
	Output  string
	Verbose bool
}

// resolveOptions merges settings sources for the template at inputPath.
// Precedence, highest first: explicit flags, environment variables
// (PBIDOC_OUTPUT, PBIDOC_VERBOSE; an optional .env file is loaded
// first), pbidoc.yaml next to the input, built-in defaults.
func resolveOptions(cmd *cobra.Command, inputPath string) (options, error) {
	// Best-effort: a missing .env file is the normal case.
	_ = godotenv.Load()

	cfg, err := config.Load(filepath.Dir(inputPath))
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return options{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		cfg = config.Default()
	}

	opts := options{
		Output:  cfg.Output,
		Verbose: cfg.Verbose,
	}

	if v, ok := os.LookupEnv("PBIDOC_OUTPUT"); ok && v != "" {
		opts.Output = v
	}
	if v, ok := os.LookupEnv("PBIDOC_VERBOSE"); ok && v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			opts.Verbose = parsed
		}
	}

	if cmd.Flags().Changed("output") {
		opts.Output, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("verbose") {
		opts.Verbose = getVerboseFlag(cmd)
	}

	return opts, nil
}
