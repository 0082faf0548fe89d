package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"sudoku-engine/pkg/config"
	"sudoku-engine/pkg/constants"
)

var rootCmd = &cobra.Command{
	Use:     "sudoku",
	Short:   "Sudoku puzzle generator and server",
	Version: constants.APIVersion,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

var quiet bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}

func setupLogging() {
	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(config.Load().LogLevel); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}
	if quiet {
		level = zerolog.WarnLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
