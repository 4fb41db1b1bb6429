package cli

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-utilskit/pkg/document"
	"github.com/huynhanx03/go-utilskit/pkg/imaging"
	"github.com/huynhanx03/go-utilskit/pkg/logger"
)

type fetchParams struct {
	out          string
	quality      float64
	maxDimension int
	limit        int
}

func newFetchCmd(a *app) *cobra.Command {
	var p fetchParams

	cmd := &cobra.Command{
		Use:   "fetch URL...",
		Short: "Download images concurrently and store them as JPEG files",
		Example: `  # Fetch two images, longest side at most 512px
  utilskit fetch --out ./images --max-dimension 512 https://example.com/a.png https://example.com/b.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFetch(cmd, p, args)
		},
	}

	cmd.Flags().StringVar(&p.out, "out", ".", "directory to write images into")
	cmd.Flags().Float64Var(&p.quality, "quality", 0, "JPEG quality from 0.0 to 1.0 (0 = config value)")
	cmd.Flags().IntVar(&p.maxDimension, "max-dimension", 0, "longest side in pixels (0 = config value)")
	cmd.Flags().IntVar(&p.limit, "limit", 0, "maximum concurrent downloads (0 = config value)")

	return cmd
}

func (a *app) runFetch(cmd *cobra.Command, p fetchParams, urls []string) error {
	ctx := cmd.Context()

	opts := imaging.Options{
		Quality:      firstNonZero(p.quality, a.cfg.Image.Quality),
		MaxDimension: firstNonZero(p.maxDimension, a.cfg.Image.MaxDimension),
	}
	limit := firstNonZero(p.limit, a.cfg.Async.Limit)

	store, err := document.NewLocalStore(p.out)
	if err != nil {
		return err
	}
	docs := document.NewManager(store, document.WithLogger(a.log), document.WithLimit(limit))

	fetcher := imaging.NewFetcher(nil, &a.cfg.Image).WithLogger(a.log).WithLimit(limit)
	results := fetcher.FetchAll(ctx, urls, opts)

	var batch []document.Document
	failed := 0
	for i, u := range urls {
		r, ok := results[u]
		if !ok {
			continue
		}
		delete(results, u)
		if r.Err != nil {
			failed++
			cmd.PrintErrf("%s: %v\n", u, r.Err)
			continue
		}
		batch = append(batch, document.Document{Name: imageName(i, u), Data: r.Data})
	}

	saved := 0
	for _, r := range docs.SaveEach(ctx, batch) {
		if r.Err != nil {
			cmd.PrintErrf("%s: %v\n", r.Name, r.Err)
			continue
		}
		saved++
		fmt.Fprintln(cmd.OutOrStdout(), r.Name)
	}

	a.log.Log(logger.TypeSuccess, fmt.Sprintf("saved %d images to %s", saved, store.BasePath()), nil)

	if failed > 0 || saved < len(batch) {
		return fmt.Errorf("%d of %d images could not be saved", failed+len(batch)-saved, failed+len(batch))
	}
	return nil
}

// imageName builds a file name from the position and the last path segment of rawURL.
func imageName(i int, rawURL string) string {
	base := "image"
	if u, err := url.Parse(rawURL); err == nil {
		if b := path.Base(u.Path); b != "." && b != "/" {
			base = strings.TrimSuffix(b, path.Ext(b))
		}
	}
	return fmt.Sprintf("%03d-%s.jpg", i, base)
}

func firstNonZero[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
