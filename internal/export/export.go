// Package export renders the intro headlessly to a numbered PNG sequence
// with a YAML manifest describing every frame.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/ink-intro/internal/config"
	"github.com/iburimskiy/ink-intro/internal/intro"
)

const (
	ManifestFile = "manifest.yaml"

	// MaxFPS keeps the frame step at a whole millisecond or more.
	MaxFPS = 1000
)

var ErrFPSOutOfRange = errors.New("fps out of range")

type Options struct {
	Dir     string
	FPS     int
	Width   int
	Height  int
	Density float64
	Seed    int64
	Logger  *log.Logger
}

func (o *Options) setDefaults() {
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.Width <= 0 {
		o.Width = config.WindowWidth
	}
	if o.Height <= 0 {
		o.Height = config.WindowHeight
	}
	if o.Density <= 0 {
		o.Density = 1
	}
	if o.Seed == 0 {
		o.Seed = 1
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

type Manifest struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Density float64 `yaml:"density"`
	FPS     int     `yaml:"fps"`
	Seed    int64   `yaml:"seed"`
	Frames  []Frame `yaml:"frames"`
}

type Frame struct {
	Index    int     `yaml:"index"`
	TimeMS   int64   `yaml:"time_ms"`
	Phase    string  `yaml:"phase"`
	Progress float64 `yaml:"progress"`
	File     string  `yaml:"file"`
}

// Run steps the intro at a fixed frame rate and writes one PNG per frame into
// opts.Dir, stopping after the first finished frame.
func Run(ctx context.Context, opts Options) (*Manifest, error) {
	opts.setDefaults()
	if opts.Dir == "" {
		return nil, fmt.Errorf("export: output directory is required")
	}
	if opts.FPS > MaxFPS {
		return nil, fmt.Errorf("export: fps %d not in [1, %d]: %w", opts.FPS, MaxFPS, ErrFPSOutOfRange)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	vp := intro.Viewport{Width: float64(opts.Width), Height: float64(opts.Height), Density: opts.Density}
	start := time.Unix(0, 0)
	cv := newCanvas()
	engine := intro.NewEngine(cv, vp, start,
		intro.WithRandom(intro.NewRandom(opts.Seed)),
		intro.WithLogger(opts.Logger),
	)
	vp = engine.Viewport()
	bw, bh := vp.BufferSize()

	m := &Manifest{
		Width:   opts.Width,
		Height:  opts.Height,
		Density: vp.Density,
		FPS:     opts.FPS,
		Seed:    opts.Seed,
	}
	step := time.Second / time.Duration(opts.FPS)
	began := time.Now()

	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		at := time.Duration(i) * step
		f := engine.Tick(start.Add(at))

		name := fmt.Sprintf("frame_%04d.png", i)
		if err := writeFrame(filepath.Join(opts.Dir, name), cv, bw, bh); err != nil {
			return nil, err
		}
		m.Frames = append(m.Frames, Frame{
			Index:    i,
			TimeMS:   at.Milliseconds(),
			Phase:    f.Phase.String(),
			Progress: f.Progress,
			File:     name,
		})
		if f.Phase == intro.Finished {
			break
		}
	}

	if err := writeManifest(filepath.Join(opts.Dir, ManifestFile), m); err != nil {
		return nil, err
	}
	opts.Logger.Info("exported frames", "count", len(m.Frames), "dir", opts.Dir, "took", time.Since(began).Round(time.Millisecond))
	return m, nil
}

// writeFrame composites the canvas over the paper color.
func writeFrame(path string, cv *canvas, w, h int) error {
	out := gg.NewContext(w, h)
	out.SetColor(config.Paper)
	out.Clear()
	out.DrawImage(cv.image(), 0, 0)
	if err := out.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a manifest written by Run.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
