package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/slidepress/internal/enhance"
	"github.com/thywilljoshua/slidepress/internal/layout"
	"github.com/thywilljoshua/slidepress/internal/pipeline"
)

func workflowCmd(log *logrus.Logger) *cobra.Command {
	var in, out, name, anchor string
	var dpi, perPage, start, sharpen int
	var contrast float64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Full workflow: enhance PDFs, pack slides onto A4 sheets, add page numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := layout.ParseAnchor(anchor)
			if !a.Valid() {
				log.WithField("anchor", anchor).Warn("unknown anchor, using bottom left")
			}
			cfg := pipeline.Config{
				Log:           log,
				DPI:           dpi,
				SlidesPerPage: perPage,
				Anchor:        a,
				StartPage:     start,
				Enhance:       enhance.Options{Contrast: contrast, Sharpen: sharpen},
			}
			return cfg.FullWorkflow(in, out, name)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "folder containing input PDFs")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&name, "name", "slides", "output filename without extension")
	cmd.Flags().StringVar(&anchor, "anchor", "bottom right", "page number position")
	cmd.Flags().IntVar(&start, "start", 1, "number of the first page")
	cmd.Flags().IntVar(&dpi, "dpi", 300, "rasterization resolution")
	cmd.Flags().IntVar(&perPage, "per-page", 3, "slides per output sheet")
	cmd.Flags().Float64Var(&contrast, "contrast", 2.0, "contrast boost factor")
	cmd.Flags().IntVar(&sharpen, "sharpen", 200, "sharpen strength in percent (0 disables)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
