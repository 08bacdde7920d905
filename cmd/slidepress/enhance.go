package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/slidepress/internal/enhance"
	"github.com/thywilljoshua/slidepress/internal/pipeline"
)

func enhanceCmd(log *logrus.Logger) *cobra.Command {
	var in, out, name string
	var dpi, sharpen int
	var contrast float64
	var combine bool

	cmd := &cobra.Command{
		Use:   "enhance",
		Short: "Invert, contrast-boost and sharpen every page of the PDFs in a folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := pipeline.Config{
				Log:     log,
				DPI:     dpi,
				Combine: combine,
				Enhance: enhance.Options{Contrast: contrast, Sharpen: sharpen},
			}
			return cfg.EnhanceDir(in, out, name)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "folder containing input PDFs")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&name, "name", "enhanced", "base name for the combined output file")
	cmd.Flags().IntVar(&dpi, "dpi", 300, "rasterization resolution")
	cmd.Flags().Float64Var(&contrast, "contrast", 2.0, "contrast boost factor")
	cmd.Flags().IntVar(&sharpen, "sharpen", 200, "sharpen strength in percent (0 disables)")
	cmd.Flags().BoolVar(&combine, "combine", false, "merge all enhanced PDFs into one file")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
