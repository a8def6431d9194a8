// Package app implements the application layer for pinfile.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync/atomic"
	"text/tabwriter"

	"go.trai.ch/pinfile/internal/adapters/constraintsfile"
	"go.trai.ch/pinfile/internal/adapters/watcher"
	"go.trai.ch/pinfile/internal/core/domain"
	"go.trai.ch/pinfile/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// App represents the main application logic.
type App struct {
	source  ports.DocumentSource
	logger  ports.Logger
	tracer  ports.Tracer
	watcher ports.Watcher
	stdout  io.Writer
}

// New creates a new App instance.
func New(source ports.DocumentSource, log ports.Logger, tracer ports.Tracer, w ports.Watcher) *App {
	return &App{
		source:  source,
		logger:  log,
		tracer:  tracer,
		watcher: w,
		stdout:  os.Stdout,
	}
}

// SetStdout redirects document output. Used for testing.
func (a *App) SetStdout(w io.Writer) {
	a.stdout = w
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	// Strict additionally reports duplicate pins: the same package pinned
	// more than once under the same environment marker.
	Strict bool
}

// Check parses the given constraints files and reports every malformed one.
// Files are checked concurrently; failures are logged as they are found and
// the method returns ErrCheckFailed if any file failed.
func (a *App) Check(ctx context.Context, paths []string, opts CheckOptions) error {
	if len(paths) == 0 {
		return domain.ErrNoFilesSpecified
	}

	_, span := a.tracer.Start(ctx, "check")
	defer span.End()

	var failed atomic.Bool
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for _, path := range paths {
		g.Go(func() error {
			if err := a.checkFile(path, opts.Strict); err != nil {
				a.logger.Error(err)
				failed.Store(true)
			}
			return nil
		})
	}
	_ = g.Wait()

	if failed.Load() {
		span.RecordError(domain.ErrCheckFailed)
		return domain.ErrCheckFailed
	}
	return nil
}

func (a *App) checkFile(path string, strict bool) error {
	doc, err := a.source.Load(path)
	if err != nil {
		return err
	}

	if strict {
		var errs error
		for _, group := range doc.DuplicatePins() {
			lines := make([]int, 0, len(group))
			for _, e := range group {
				lines = append(lines, e.Pos())
			}
			sort.Ints(lines)

			err := zerr.With(domain.ErrDuplicatePin, "package", group[0].Canonical().String())
			err = zerr.With(err, "path", path)
			err = zerr.With(err, "lines", fmt.Sprint(lines))
			errs = errors.Join(errs, err)
		}
		if errs != nil {
			return errs
		}
	}

	a.logger.Info(fmt.Sprintf("%s: %d constraints", path, len(doc.Entries())))
	return nil
}

// FormatOptions configuration for the Format method.
type FormatOptions struct {
	// Write rewrites files in place instead of printing to stdout.
	Write bool
	// ListChanged prints only the names of files whose formatting differs.
	ListChanged bool
}

// Format renders the given constraints files in canonical form. Without
// options the canonical text goes to stdout; see FormatOptions for the
// in-place and list modes.
func (a *App) Format(ctx context.Context, paths []string, opts FormatOptions) error {
	if len(paths) == 0 {
		return domain.ErrNoFilesSpecified
	}

	_, span := a.tracer.Start(ctx, "fmt")
	defer span.End()

	for _, path := range paths {
		if err := a.formatFile(path, opts); err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}

func (a *App) formatFile(path string, opts FormatOptions) error {
	doc, err := a.source.Load(path)
	if err != nil {
		return err
	}

	switch {
	case opts.ListChanged:
		changed, err := a.source.Changed(path, doc)
		if err != nil {
			return err
		}
		if changed {
			fmt.Fprintln(a.stdout, path)
		}
	case opts.Write:
		if _, err := a.source.Store(path, doc); err != nil {
			return err
		}
	default:
		if _, err := a.stdout.Write(constraintsfile.Serialize(doc)); err != nil {
			return zerr.Wrap(err, "failed to write output")
		}
	}
	return nil
}

// ListOptions configuration for the List method.
type ListOptions struct {
	// Output selects the rendering: "text" (default) or "yaml".
	Output string
	// Package restricts the listing to entries matching this package name.
	// Matching is canonical, so any equivalent spelling works.
	Package string
}

// List prints the constraint entries of a file. Comments and blank lines
// are omitted; a package filtered by name shows all its marker-qualified
// entries.
func (a *App) List(ctx context.Context, path string, opts ListOptions) error {
	_, span := a.tracer.Start(ctx, "list")
	defer span.End()

	doc, err := a.source.Load(path)
	if err != nil {
		span.RecordError(err)
		return err
	}

	entries := doc.Entries()
	if opts.Package != "" {
		entries = doc.EntriesFor(opts.Package)
	}

	switch opts.Output {
	case "", "text":
		return a.listText(entries)
	case "yaml":
		return a.listYAML(entries)
	default:
		return zerr.With(domain.ErrInvalidOutputFormat, "output", opts.Output)
	}
}

func (a *App) listText(entries []*domain.Entry) error {
	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Op, e.Version, e.Marker)
	}
	return w.Flush()
}

// listedEntry is the YAML representation of a constraint entry.
type listedEntry struct {
	Name     string `yaml:"name"`
	Operator string `yaml:"operator"`
	Version  string `yaml:"version"`
	Marker   string `yaml:"marker,omitempty"`
	Comment  string `yaml:"comment,omitempty"`
}

func (a *App) listYAML(entries []*domain.Entry) error {
	listed := make([]listedEntry, 0, len(entries))
	for _, e := range entries {
		listed = append(listed, listedEntry{
			Name:     e.Name,
			Operator: string(e.Op),
			Version:  e.Version,
			Marker:   e.Marker,
			Comment:  e.Comment,
		})
	}

	data, err := yaml.Marshal(listed)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal entries")
	}
	if _, err := a.stdout.Write(data); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}
	return nil
}

// Watch re-checks the given files whenever they change on disk. It blocks
// until the context is canceled.
func (a *App) Watch(ctx context.Context, paths []string, opts CheckOptions) error {
	if len(paths) == 0 {
		return domain.ErrNoFilesSpecified
	}

	if err := a.watcher.Start(ctx, paths); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer a.watcher.Stop() //nolint:errcheck // Best effort shutdown

	// Initial pass; in watch mode a failure is reported, not fatal.
	_ = a.Check(ctx, paths, opts)

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(changed []string) {
		_ = a.Check(ctx, changed, opts)
	})

	for event := range a.watcher.Events() {
		a.logger.Info(fmt.Sprintf("%s changed", event.Path))
		debouncer.Add(event.Path)
	}

	debouncer.Flush()
	return nil
}
