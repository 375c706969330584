package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mindease",
	Short: "MindEase API server",
	Long: `MindEase backend: mood logging, ERP task tracking, compulsion logging
and an AI companion with an offline fallback.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "directory containing the .env file")
	rootCmd.AddCommand(serveCmd, mockCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
