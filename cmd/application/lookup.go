package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"offerte_api/internal/products/app"
	"offerte_api/internal/products/models"
)

var lookupSKUs string

var lookupCmd = &cobra.Command{
	Use:     "lookup",
	Short:   "Look up SKUs once and print the JSON payload",
	Example: "  offerte-api lookup --skus 100234,100235",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := app.NewDatabase(&cfg.Database, log)
		if err != nil {
			return err
		}
		defer db.Close()

		services, err := app.NewServices(cfg, db, log)
		if err != nil {
			return err
		}
		records, err := services.Products.Display(cmd.Context(), lookupSKUs)
		if err != nil {
			return err
		}
		return writeRecords(cmd.OutOrStdout(), records, cfg.Products.Envelope)
	},
}

func init() {
	lookupCmd.Flags().StringVar(&lookupSKUs, "skus", "", "comma separated SKUs")
	_ = lookupCmd.MarkFlagRequired("skus")
}

func writeRecords(w io.Writer, records []models.DisplayRecord, envelope bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if envelope {
		return enc.Encode(struct {
			Products []models.DisplayRecord `json:"products"`
		}{records})
	}
	return enc.Encode(records)
}
