package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kingrea/seawolf/internal/generate"
)

func newGenerateCmd(opts *cliOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the sites and candidate pools for a seed",
		Long: `Generate runs the same procedural generation a game uses and prints the
result, so a seed can be inspected or shared without playing it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := resolveSeed(cmd, opts)
			if err != nil {
				return err
			}
			value := generate.RandomSeed()
			if seed != nil {
				value = *seed
			}
			world := generate.Generate(opts.cfg.Game, value, generate.WithLogger(opts.logger))
			return writeWorld(cmd.OutOrStdout(), world, format)
		},
	}
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Generation seed (or set "+seedEnv+")")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")
	return cmd
}

func writeWorld(w io.Writer, world generate.World, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(world); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(world); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want yaml or json)", format)
	}
}
