package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/scorekeeper/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scorekeeper SSH server",
	Long: `Start an SSH server that lets users connect and score matches.

Each SSH connection gets its own session with a game picker menu, and every
match it starts is independent of other sessions. Results are stored
per-server (all users share the same history) under their SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.scorekeeper/host_key

Examples:
  scorekeeper serve                           # Listen on :23234 with auto-generated key
  scorekeeper serve --ssh :2222               # Listen on port 2222
  scorekeeper serve --host-key ./my_host_key  # Use specific host key
  scorekeeper serve --preset best-of-3        # Shorter tennis matches for everyone

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Options:     matchOptions(),
		Logger:      newLogger("scorekeeper-ssh"),
	}

	// Session events are logged at info.
	if !rootCmd.PersistentFlags().Changed("log-level") {
		cfg.Logger.SetLevel(log.InfoLevel)
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting scorekeeper SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
