package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	structext "github.com/Rehan80221/adobe-structure-extractor"
	"github.com/Rehan80221/adobe-structure-extractor/version"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "structext",
	Short: "Infer titles and outlines from PDF documents",
	Long: `Structext analyzes the text layout of PDF documents and infers their
semantic structure: a document title and a hierarchical H1/H2/H3 outline.

Detection is heuristic and works without embedded bookmarks: font sizes,
emphasis, position on the page, numbering patterns, and text shape all feed
a weighted per-span confidence score.`,
	Version: version.String(),
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./structext.yaml or ~/.structext/structext.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info", "log level: debug, info, warn, error",
	)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		initLogging()
	}

	rootCmd.AddCommand(processCmd, watchCmd, versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("structext")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.structext")
	}

	// Environment variables with STRUCTEXT_ prefix
	viper.SetEnvPrefix("STRUCTEXT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// Config file is optional
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(1)
		}
	}
}

func initLogging() {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// analyzerFor builds the analyzer chain for one document from viper state.
// Unset keys leave the library defaults in place.
func analyzerFor(path string) *structext.Analyzer {
	a := structext.Open(path)
	if v := viper.GetFloat64("min_confidence"); v > 0 {
		a = a.MinConfidence(v)
	}
	if v := viper.GetFloat64("title_confidence"); v > 0 {
		a = a.TitleConfidence(v)
	}
	if v := viper.GetFloat64("min_font_size"); v > 0 {
		a = a.MinFontSize(v)
	}
	if n := viper.GetInt("max_pages"); n > 0 {
		a = a.MaxPages(n)
	}
	return a
}
