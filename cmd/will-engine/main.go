// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the will-engine CLI: index the
// legal corpus, validate drafting facts, retrieve source passages, and
// assemble draft wills.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintel/will-engine/internal/secrets"
	"github.com/meshintel/will-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the will-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "will-engine",
	Short: "Retrieval-grounded drafting engine for Malaysian non-Muslim wills",
	Long: `will-engine assembles legally compliant draft wills for non-Muslim
Malaysians under the Wills Act 1959. Generated clauses are grounded in a
curated legal knowledge corpus; a four-stage rule engine validates the
facts before generation and the document after it.

Each engine operation is a subcommand: index builds the retrieval index,
validate checks drafting facts, retrieve queries the corpus, and assemble
produces the draft document with its provenance manifest.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./will-engine.yaml or ~/.config/will-engine/config.yaml)")
	rootCmd.PersistentFlags().String("corpus-dir", "", "directory of additional corpus fragment YAML files")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("will-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "will-engine"))
		}
	}

	viper.SetEnvPrefix("WILL_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("embedding.model", "text-embedding-3-small")
	viper.SetDefault("embedding.cache_dir", ".will-engine/cache")
	viper.SetDefault("generation.model", "gpt-4o-mini")
	viper.SetDefault("generation.temperature", 0.1)
	viper.SetDefault("assembly.top_k", 4)
	viper.SetDefault("assembly.max_retries", 3)
	viper.SetDefault("assembly.section_timeout", "30s")
	viper.SetDefault("assembly.output_dir", "generated_wills")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig assembles the engine configuration from viper, flags, and
// loaded secrets.
func engineConfig(cmd *cobra.Command) types.EngineConfig {
	corpusDir, _ := cmd.Flags().GetString("corpus-dir")
	if corpusDir == "" {
		corpusDir = viper.GetString("corpus.dir")
	}

	timeout, err := time.ParseDuration(viper.GetString("assembly.section_timeout"))
	if err != nil {
		timeout = 30 * time.Second
	}

	return types.EngineConfig{
		Corpus: types.CorpusConfig{
			Dir:             corpusDir,
			BuiltinDisabled: viper.GetBool("corpus.builtin_disabled"),
		},
		Embedding: types.EmbeddingConfig{
			Model:    viper.GetString("embedding.model"),
			APIKey:   secretDefault("openai-api-key", secretDefault("embedding-api-key", viper.GetString("embedding.api_key"))),
			BaseURL:  viper.GetString("embedding.base_url"),
			CacheDir: viper.GetString("embedding.cache_dir"),
			Local:    viper.GetBool("embedding.local"),
		},
		Generation: types.GenerationConfig{
			Model:       viper.GetString("generation.model"),
			APIKey:      secretDefault("openai-api-key", secretDefault("generation-api-key", viper.GetString("generation.api_key"))),
			BaseURL:     viper.GetString("generation.base_url"),
			Temperature: float32(viper.GetFloat64("generation.temperature")),
		},
		Assembly: types.AssemblyConfig{
			TopK:           viper.GetInt("assembly.top_k"),
			MaxRetries:     viper.GetInt("assembly.max_retries"),
			SectionTimeout: timeout,
			OutputDir:      viper.GetString("assembly.output_dir"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
