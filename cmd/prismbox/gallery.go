package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prismbox/internal/gallery"
)

type galleryOptions struct {
	Parallel int
}

var galleryCmdRunner = runGallery

func newGalleryCmd(root *rootFlags) *cobra.Command {
	opts := galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery [text...]",
		Short: "Preview every border style and gradient mode",
		Long: `Render the built-in preview gallery: one frame per border style plus
the gradient demonstrations. Arguments replace the sample content.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sample := args
			if len(sample) == 0 {
				sample = []string{"The quick brown fox", "jumps over the lazy dog"}
			}
			return galleryCmdRunner(cmd, root, opts, sample)
		},
	}

	cmd.Flags().IntVar(&opts.Parallel, "parallel", 0, "Concurrent renders (0 means one per CPU)")

	return cmd
}

func runGallery(cmd *cobra.Command, root *rootFlags, opts galleryOptions, sample []string) error {
	log, err := newCommandLogger(root.verbose)
	if err != nil {
		return err
	}

	writer, err := writerFor(root)
	if err != nil {
		return err
	}

	jobs := gallery.Presets(sample)
	results, err := gallery.Render(cmd.Context(), jobs, gallery.Options{Parallel: opts.Parallel, Logger: log})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "%s: %v\n\n", res.Name, res.Err)
			continue
		}
		fmt.Fprintf(out, "%s\n%s\n\n", res.Name, writer.Render(res.Lines))
	}
	return nil
}
