package main

import (
	"github.com/spf13/cobra"

	"saudade-match/internal/domain"
	"saudade-match/internal/service"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the compatibility of two profiles",
	Long:  "Reads two cultural depth profiles (YAML or JSON), validates and normalizes them and prints the full compatibility result.",
	RunE:  runScore,
}

var (
	scoreProfileA string
	scoreProfileB string
	scoreLocale   string
	scoreFormat   string
)

func init() {
	scoreCmd.Flags().StringVar(&scoreProfileA, "a", "", "Path to the first profile (required)")
	scoreCmd.Flags().StringVar(&scoreProfileB, "b", "", "Path to the second profile (required)")
	scoreCmd.Flags().StringVarP(&scoreLocale, "locale", "l", string(domain.LocaleEnglish), "Output language: en or pt")
	scoreCmd.Flags().StringVarP(&scoreFormat, "format", "f", formatJSON, "Output format: json or yaml")
	_ = scoreCmd.MarkFlagRequired("a")
	_ = scoreCmd.MarkFlagRequired("b")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	locale, err := domain.ParseLocale(scoreLocale)
	if err != nil {
		return err
	}
	a, err := loadProfile(scoreProfileA)
	if err != nil {
		return err
	}
	b, err := loadProfile(scoreProfileB)
	if err != nil {
		return err
	}

	result, err := service.DefaultCompatibilityService.Compute(a, b, locale)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), scoreFormat, result)
}
