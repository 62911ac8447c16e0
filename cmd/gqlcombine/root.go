package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/afs"
	"github.com/viant/gqlcombine"
	"github.com/viant/gqlcombine/resolver"
	"gopkg.in/yaml.v3"
)

const envPrefix = "GQLCOMBINE"

type flags struct {
	config       string
	schemaOut    string
	resolversOut string
	format       string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "gqlcombine",
		Short: "Combine GraphQL type definitions and resolvers spread across feature modules",
		Long: `gqlcombine finds schema and resolver files with glob patterns, rewrites repeated
Query, Mutation and Subscription declarations into extensions and deep merges resolver maps.

Examples:
  gqlcombine --typedefs 'graphql/*/schema.graphql' --resolvers 'graphql/*/resolver.yaml'
  gqlcombine --config gqlcombine.yaml --schema-out schema.graphql --resolvers-out resolvers.json --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, f)
		},
	}
	cmd.Flags().StringVar(&f.config, "config", "", "config file (yaml, toml or json) with typedefs and resolvers patterns")
	cmd.Flags().String("typedefs", "", "glob pattern of schema definition files")
	cmd.Flags().String("resolvers", "", "glob pattern of resolver files (yaml, yml, json, toml)")
	cmd.Flags().StringVar(&f.schemaOut, "schema-out", "", "destination URL of combined schema (default stdout)")
	cmd.Flags().StringVar(&f.resolversOut, "resolvers-out", "", "destination URL of merged resolvers")
	cmd.Flags().StringVar(&f.format, "format", "yaml", "merged resolvers format: yaml or json")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose output")
	_ = v.BindPFlag("typedefs", cmd.Flags().Lookup("typedefs"))
	_ = v.BindPFlag("resolvers", cmd.Flags().Lookup("resolvers"))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, f *flags) error {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "gqlcombine"})
	if f.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	options, err := loadOptions(v, f.config)
	if err != nil {
		logger.Error("failed to load config", "config", f.config, "err", err)
		return err
	}
	ctx := cmd.Context()
	fs := afs.New()
	result, err := gqlcombine.New(gqlcombine.WithFS(fs), gqlcombine.WithLogger(logger)).Combine(ctx, options)
	if err != nil {
		logger.Error("failed to combine", "err", err)
		return err
	}
	if result.TypeDefs == nil {
		logger.Warn("no type definitions", "pattern", options.TypeDefs)
	} else {
		logger.Info("combined type definitions", "files", len(result.Sources.TypeDefs), "fingerprint", fmt.Sprintf("%016x", result.Fingerprint()))
		if err := write(cmd, fs, f.schemaOut, []byte(*result.TypeDefs)); err != nil {
			logger.Error("failed to write schema", "url", f.schemaOut, "err", err)
			return err
		}
	}
	logger.Info("merged resolvers", "files", len(result.Sources.Resolvers), "fields", len(result.Resolvers.Paths()))
	for _, location := range result.Resolvers.Paths() {
		logger.Debug("resolver", "path", location)
	}
	if f.resolversOut == "" {
		return nil
	}
	data, err := encode(result.Resolvers, f.format)
	if err != nil {
		return err
	}
	if err = write(cmd, fs, f.resolversOut, data); err != nil {
		logger.Error("failed to write resolvers", "url", f.resolversOut, "err", err)
		return err
	}
	return nil
}

func loadOptions(v *viper.Viper, config string) (*gqlcombine.Options, error) {
	if config != "" {
		v.SetConfigFile(config)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %v: %w", config, err)
		}
	}
	return &gqlcombine.Options{
		TypeDefs:  v.GetString("typedefs"),
		Resolvers: v.GetString("resolvers"),
	}, nil
}

func encode(resolvers resolver.Map, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Marshal(resolvers)
	case "json":
		return json.MarshalIndent(resolvers, "", "  ")
	}
	return nil, fmt.Errorf("unsupported format: %v", format)
}

func write(cmd *cobra.Command, fs afs.Service, URL string, data []byte) error {
	if URL == "" || URL == "-" {
		_, err := io.Copy(cmd.OutOrStdout(), bytes.NewReader(data))
		return err
	}
	return fs.Upload(cmd.Context(), URL, os.FileMode(0644), bytes.NewReader(data))
}
