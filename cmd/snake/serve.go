package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own menu and sessions. Scores are stored
per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	srvCfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKey,
		DBPath:      cfg.Storage.DB,
		IdleTimeout: cfg.Server.IdleTimeout,
		TickPeriod:  cfg.Game.Tick,
		FoodBudget:  cfg.Food.PlacementBudget,
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		srvCfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		srvCfg.HostKeyPath = config.ExpandHome(flagHostKey)
	}
	if flags.Changed("idle-timeout") {
		srvCfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(srvCfg, logger.WithPrefix("snake-ssh"))
	if err != nil {
		return fmt.Errorf("cannot start server: %w", err)
	}

	port := "23234"
	if _, p, splitErr := net.SplitHostPort(srvCfg.Address); splitErr == nil {
		port = p
	}
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
