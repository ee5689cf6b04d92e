// Package main implementa compat, la CLI para puntuar perfiles de saudade sin levantar el servidor.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "compat",
	Short:         "Saudade compatibility scoring tools",
	Long:          "compat scores pairs of cultural depth profiles, derives profiles from assessment answers and issues access tokens for the API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
