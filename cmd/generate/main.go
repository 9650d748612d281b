// Command generate writes query_generated.go for package ecsbind.
//
// Usage (from the package directory, normally via go generate):
//
//	go run ./cmd/generate --max-arity 12
package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/edwinsyarief/ecsbind/internal/gen"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := newRootCommand(logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("generate failed")
		os.Exit(1)
	}
}

type flags struct {
	output   string
	pkg      string
	maxArity int
}

func newRootCommand(logger zerolog.Logger) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "generate",
		Short:         "Generate Query2..QueryN for package ecsbind",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := gen.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-arity") {
				cfg.MaxArity = f.maxArity
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = f.output
			}
			if cmd.Flags().Changed("package") {
				cfg.Package = f.pkg
			}
			return run(cfg, logger)
		},
	}
	cmd.Flags().IntVar(&f.maxArity, "max-arity", 0, "largest query arity to generate (overrides ECSBIND_MAX_ARITY)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (overrides ECSBIND_OUTPUT)")
	cmd.Flags().StringVar(&f.pkg, "package", "", "package clause of the output (overrides ECSBIND_PACKAGE)")
	return cmd
}

func run(cfg gen.Config, logger zerolog.Logger) error {
	src, err := gen.Generate(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return eris.Wrapf(err, "failed to write %s", cfg.Output)
	}
	logger.Info().
		Str("output", cfg.Output).
		Int("max_arity", cfg.MaxArity).
		Int("bytes", len(src)).
		Msg("query code generated")
	return nil
}
