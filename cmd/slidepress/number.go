package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/slidepress/internal/layout"
	"github.com/thywilljoshua/slidepress/internal/pipeline"
)

func numberCmd(log *logrus.Logger) *cobra.Command {
	var anchor string
	var start int

	cmd := &cobra.Command{
		Use:   "number <input.pdf> <output.pdf>",
		Short: "Overlay running page numbers onto an existing PDF",
		Args:  cobra.ExactArgs(2),
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
			return cfg.Number(args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&anchor, "anchor", "bottom right", "page number position (bottom left, bottom right, top left, top right, top middle, bottom middle)")
	cmd.Flags().IntVar(&start, "start", 1, "number of the first page")
	return cmd
}
