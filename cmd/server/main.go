// Package main is the entry point for the loot sheet service
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-lootsheet/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "lootsheet",
	Short: "Loot sheet service",
	Long:  `Loot sheet turns defeated creatures into lootable containers and merchants, rolls loot tables onto them and manages player access.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml or toml); LOOTSHEET_* env vars override it")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
