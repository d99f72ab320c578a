// Package main is the entry point for card-forge
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/card-forge/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "card-forge",
	Short: "Trading card creature generator",
	Long: `card-forge generates creature cards in evolution series, draws their artwork
through a hosted inference API and composes the final card images.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initConfig()
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	bindFlags(rootCmd)

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
