package cli

import (
	"log"

	"github.com/sawamura/taskhub/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the directories and reports over HTTP",
	Long: `Start a read-only HTTP API exposing users, namespaces, members and
the team, workload and stats reports as JSON.`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	addr := serveAddr
	if addr == "" {
		addr = a.cfg.Addr
	}

	srv := server.New(a.users, a.namespaces, a.reports)
	log.Printf("Serving on %s", addr)
	return srv.Run(addr)
}
