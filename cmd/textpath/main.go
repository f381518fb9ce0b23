// Command textpath renders a scene file of labelled paths to SVG.
//
// With -watch it keeps running and re-renders whenever the scene file
// changes; labels follow the new geometry without being re-requested.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/scene"
	"github.com/gogpu/textpath/text"
)

func main() {
	var (
		input    = flag.String("scene", "scene.yaml", "scene file (.yaml, .yml or .toml)")
		output   = flag.String("output", "labels.svg", "output SVG file")
		measurer = flag.String("measurer", "", "text measurer: "+strings.Join(text.Measurers(), ", "))
		label    = flag.String("label", "", "extra label added to every path")
		center   = flag.Bool("center", false, "center the -label text")
		watch    = flag.Bool("watch", false, "re-render when the scene file changes")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	textpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	r := &renderer{
		input:    *input,
		output:   *output,
		measurer: *measurer,
		label:    *label,
		center:   *center,
	}
	if err := r.build(); err != nil {
		fatal(err)
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := r.watch(ctx); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	slog.Error("textpath", "err", err)
	os.Exit(1)
}

type renderer struct {
	input, output string
	measurer      string
	label         string
	center        bool

	sc *scene.Scene
}

func (r *renderer) load() (*scene.Document, error) {
	doc, err := scene.Load(r.input)
	if err != nil {
		return nil, err
	}
	if r.measurer != "" {
		doc.Measurer = r.measurer
	}
	if r.label != "" {
		doc.Labels = append(doc.Labels, scene.Label{Text: r.label, Center: r.center})
	}
	return doc, nil
}

// build loads the scene from scratch and writes the output.
func (r *renderer) build() error {
	doc, err := r.load()
	if err != nil {
		return err
	}
	sc, err := scene.Build(doc)
	if err != nil {
		return err
	}
	r.sc = sc
	return r.write()
}

// reload applies the current scene file to the built scene.
func (r *renderer) reload() error {
	doc, err := r.load()
	if err != nil {
		return err
	}
	if err := r.sc.Update(doc); err != nil {
		return err
	}
	return r.write()
}

func (r *renderer) write() error {
	if err := r.sc.Document().SaveSVG(r.output); err != nil {
		return fmt.Errorf("write %s: %w", r.output, err)
	}
	textpath.Logger().Info("rendered", "scene", r.input, "output", r.output,
		"paths", len(r.sc.Document().Paths()), "labels", len(r.sc.Document().Labels()))
	return nil
}

// watch re-renders on changes to the scene file until ctx is done. The
// directory is watched so editors that replace the file are followed.
func (r *renderer) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(r.input)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	textpath.Logger().Info("watching", "scene", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := r.reload(); err != nil {
				// Keep the last good render; the file may be mid-edit.
				textpath.Logger().Warn("reload failed", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				textpath.Logger().Warn("watch overflow, rebuilding")
				if err := r.build(); err != nil {
					textpath.Logger().Warn("rebuild failed", "err", err)
				}
				continue
			}
			return err
		}
	}
}
