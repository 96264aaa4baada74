// Package gallery renders batches of frame previews concurrently. The
// CLI uses it to show every border style and gradient mode at once.
package gallery

import (
	"context"
	"runtime"
	"sync"

	"github.com/alexisbeaulieu97/prismbox/internal/color"
	"github.com/alexisbeaulieu97/prismbox/internal/frame"
	"github.com/alexisbeaulieu97/prismbox/internal/gradient"
	"github.com/alexisbeaulieu97/prismbox/internal/logger"
	"github.com/alexisbeaulieu97/prismbox/internal/render"
)

// maxParallel caps the worker pool regardless of requested size.
const maxParallel = 32

// Job names one frame spec to preview.
type Job struct {
	Name string
	Spec frame.Spec
}

// Result pairs a job name with its rendered lines. A failed render
// carries the error instead; one bad spec does not sink the batch.
type Result struct {
	Name  string
	Lines []render.Line
	Err   error
}

// Options tunes a gallery run.
type Options struct {
	// Parallel bounds concurrent renders. Zero means one worker per
	// CPU.
	Parallel int
	Logger   *logger.Logger
}

// Render draws every job and returns results in job order. The error
// is non-nil only when the context ends the run early; per-job
// failures live on the individual results.
func Render(ctx context.Context, jobs []Job, opts Options) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	if parallel > maxParallel {
		parallel = maxParallel
	}

	results := make([]Result, len(jobs))
	sem := make(chan struct{}, parallel)
	var wg sync.WaitGroup

	for idx, job := range jobs {
		wg.Add(1)
		go func(idx int, job Job) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result{Name: job.Name, Err: ctx.Err()}
				return
			}
			if err := ctx.Err(); err != nil {
				results[idx] = Result{Name: job.Name, Err: err}
				return
			}

			lines, err := frame.Render(job.Spec)
			if err != nil {
				opts.Logger.WithFields(map[string]any{"preview": job.Name}).Error(err, "preview render failed")
				results[idx] = Result{Name: job.Name, Err: err}
				return
			}
			results[idx] = Result{Name: job.Name, Lines: lines}
		}(idx, job)
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// Presets returns the built-in gallery: one frame per border style
// followed by the gradient demonstrations, all wrapping the same
// content lines.
func Presets(lines []string) []Job {
	jobs := make([]Job, 0, len(frame.Styles())+3)
	for _, style := range frame.Styles() {
		jobs = append(jobs, Job{
			Name: style,
			Spec: frame.Spec{Lines: lines, Title: style, Border: style, Padding: 1},
		})
	}

	top := color.RGB{R: 0, G: 51, B: 102}
	bottom := color.RGB{R: 102, G: 204, B: 255}
	jobs = append(jobs,
		Job{
			Name: "rainbow",
			Spec: frame.Spec{
				Lines:   lines,
				Title:   "rainbow",
				Border:  "thick",
				Padding: 1,
				Gradient: &gradient.Request{
					Position: gradient.Horizontal,
					Source:   gradient.Rainbow(),
				},
			},
		},
		Job{
			Name: "border-fade",
			Spec: frame.Spec{
				Lines:   lines,
				Title:   "border-fade",
				Border:  "rounded",
				Padding: 1,
				Gradient: &gradient.Request{
					Position: gradient.Vertical,
					Source:   gradient.Linear(top, bottom, gradient.SpaceRGB),
					Target:   gradient.TargetBorder,
				},
			},
		},
		Job{
			Name: "content-wash",
			Spec: frame.Spec{
				Lines:   lines,
				Title:   "content-wash",
				Border:  "double",
				Padding: 1,
				Gradient: &gradient.Request{
					Position: gradient.Diagonal,
					Source:   gradient.Palette([]color.RGB{{R: 255, G: 69, B: 0}, {R: 255, G: 215, B: 0}, {R: 138, G: 43, B: 226}}, gradient.SpaceHSV),
					Target:   gradient.TargetContent,
				},
			},
		},
	)
	return jobs
}
