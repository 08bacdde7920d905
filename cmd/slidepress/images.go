package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/slidepress/internal/layout"
	"github.com/thywilljoshua/slidepress/internal/pipeline"
)

func imagesCmd(log *logrus.Logger) *cobra.Command {
	var in, out, name, anchor string
	var start int

	cmd := &cobra.Command{
		Use:   "images",
		Short: "Convert a folder of images into a numbered PDF, one image per page",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := layout.ParseAnchor(anchor)
			if !a.Valid() {
				log.WithField("anchor", anchor).Warn("unknown anchor, using bottom left")
			}
			cfg := pipeline.Config{
				Log:       log,
				Anchor:    a,
				StartPage: start,
			}
			return cfg.ImagesToPDF(in, out, name)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "folder containing .png/.jpg/.jpeg images")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&name, "name", "images", "output filename without extension")
	cmd.Flags().StringVar(&anchor, "anchor", "bottom right", "page number position")
	cmd.Flags().IntVar(&start, "start", 1, "number of the first page")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
