package main

import (
	"github.com/spf13/cobra"

	"saudade-match/internal/domain"
	"saudade-match/internal/service"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Print the aggregate weight vector",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeOutput(cmd.OutOrStdout(), weightsFormat, service.DefaultCompatibilityService.Weights())
	},
}

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the known Portuguese regions and their dialect families",
	RunE:  runRegions,
}

var (
	weightsFormat string
	regionsLocale string
	regionsFormat string
)

type regionRow struct {
	Key     string `json:"key" yaml:"key"`
	Name    string `json:"name" yaml:"name"`
	Dialect string `json:"dialect" yaml:"dialect"`
}

func init() {
	weightsCmd.Flags().StringVarP(&weightsFormat, "format", "f", formatJSON, "Output format: json or yaml")
	regionsCmd.Flags().StringVarP(&regionsLocale, "locale", "l", string(domain.LocaleEnglish), "Language for region names: en or pt")
	regionsCmd.Flags().StringVarP(&regionsFormat, "format", "f", formatJSON, "Output format: json or yaml")

	rootCmd.AddCommand(weightsCmd, regionsCmd)
}

func runRegions(cmd *cobra.Command, _ []string) error {
	locale, err := domain.ParseLocale(regionsLocale)
	if err != nil {
		return err
	}
	keys := domain.RegionKeys()
	rows := make([]regionRow, 0, len(keys))
	for _, key := range keys {
		info, _ := domain.LookupRegion(key)
		rows = append(rows, regionRow{Key: info.Key, Name: info.Name(locale), Dialect: string(info.Dialect)})
	}
	return writeOutput(cmd.OutOrStdout(), regionsFormat, rows)
}
