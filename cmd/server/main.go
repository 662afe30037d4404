// Package main is the entry point for the game API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "juego-pardo",
	Short: "Pardo RPG game server",
	Long:  `Pardo RPG serves the combat, loot, mission and matchmaking API behind the chat-bot web client.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
