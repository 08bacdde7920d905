package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/slidepress/internal/pipeline"
)

func packCmd(log *logrus.Logger) *cobra.Command {
	var in, out, name string
	var dpi, perPage int

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Lay the pages of one or more PDFs out several to an A4 sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := pipeline.Config{
				Log:           log,
				DPI:           dpi,
				SlidesPerPage: perPage,
			}
			return cfg.PackInputs(in, out, name)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "input PDF file or folder of PDFs")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&name, "name", "packed", "output filename without extension")
	cmd.Flags().IntVar(&dpi, "dpi", 300, "rasterization resolution")
	cmd.Flags().IntVar(&perPage, "per-page", 3, "slides per output sheet")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
