package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Nagraj23/notation-tui/api"
	"github.com/Nagraj23/notation-tui/config"
	"github.com/Nagraj23/notation-tui/logger"
	"github.com/Nagraj23/notation-tui/model"
	"github.com/Nagraj23/notation-tui/session"
)

var (
	serverFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "notation",
	Short: "Terminal client for the Notation note-taking service",
	Long: `Notation keeps your notes on a remote server; this client lets you
log in, browse, write and edit them without leaving the terminal.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}
		if serverFlag != "" {
			cfg.ServerURL = strings.TrimRight(serverFlag, "/")
		}
		if verbose {
			cfg.LogLevel = "debug"
		}

		if err := os.MkdirAll(cfg.StateDir, 0700); err != nil {
			return err
		}
		logFile, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return err
		}
		defer logFile.Close()

		log := logger.Init(logger.Options{Level: cfg.LogLevel, Output: logFile})
		log.Info().Str("server", cfg.ServerURL).Msg("starting notation")

		client := api.New(cfg.ServerURL, cfg.HTTPTimeout)
		store := session.NewStore(cfg.StateDir)

		p := tea.NewProgram(model.New(client, store), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Error().Err(err).Msg("program exited with error")
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&serverFlag, "server", "s", "", "override the Notation server base URL")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
