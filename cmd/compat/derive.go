package main

import (
	"github.com/spf13/cobra"

	"saudade-match/internal/domain"
	"saudade-match/internal/service"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive a profile from assessment answers",
	Long:  "Builds a normalized cultural depth profile from a questionnaire answers file (YAML or JSON). Missing answers take neutral defaults.",
	RunE:  runDerive,
}

var (
	deriveAnswers string
	deriveUserID  string
	deriveLocale  string
	deriveFormat  string
)

func init() {
	deriveCmd.Flags().StringVarP(&deriveAnswers, "answers", "i", "", "Path to the answers file (required)")
	deriveCmd.Flags().StringVarP(&deriveUserID, "user", "u", "", "User id stored in the derived profile")
	deriveCmd.Flags().StringVarP(&deriveLocale, "locale", "l", string(domain.LocaleEnglish), "Language for descriptive texts: en or pt")
	deriveCmd.Flags().StringVarP(&deriveFormat, "format", "f", formatYAML, "Output format: json or yaml")
	_ = deriveCmd.MarkFlagRequired("answers")

	rootCmd.AddCommand(deriveCmd)
}

func runDerive(cmd *cobra.Command, _ []string) error {
	locale, err := domain.ParseLocale(deriveLocale)
	if err != nil {
		return err
	}
	var answers domain.AssessmentAnswers
	if err := readDocument(deriveAnswers, &answers); err != nil {
		return err
	}
	profile := service.DeriveProfile(deriveUserID, answers, locale)
	return writeOutput(cmd.OutOrStdout(), deriveFormat, profile)
}
