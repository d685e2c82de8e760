// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command geomplot draws points, lines, and planes in 3D space.
//
// geomplot reads primitives, one JSON record per line, from its input
// files (or standard input) and draws them in one or more orthographic
// views. Each record is an object with a single key naming the kind of
// primitive:
//
//	{"point": [x, y, z]}
//	{"line":  [dx, dy, dz, mx, my, mz]}
//	{"plane": [nx, ny, nz, o]}
//
// A line is given in Plücker coordinates: a direction d and a moment
// m = p × d for any point p on the line. A plane is the set of points
// x where n·x + o = 0. An input line may also hold a JSON array of
// records.
//
// By default geomplot writes an SVG plot with one panel per view.
// -format png writes a raster instead. -table prints the projected
// vertices as a table, and -records echoes the validated primitives
// in the input format.
//
// Settings may also be given in a YAML file with -config. Flags
// override the file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/aclements/geomplot/geom"
	"github.com/aclements/geomplot/record"
	"github.com/aclements/geomplot/scene"
	"go.uber.org/zap"
)

func main() {
	var (
		flagConfig     = flag.String("config", "", "read settings from YAML `file`")
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagFormat     = flag.String("format", formatSVG, "output `format`: svg or png")
		flagViews      = flag.String("views", "xy,xz,yz", "comma-separated `list` of views (xy, xz, yz, iso)")
		flagDim        = flag.Int("dim", 3, "expected `dimension` of primitives (0 means 3); negative accepts any")
		flagTitle      = flag.String("title", "", "plot `title` (default: input file names)")
		flagTable      = flag.Bool("table", false, "output a table instead of a plot")
		flagRecords    = flag.Bool("records", false, "output the validated primitives as JSON records instead of a plot")
		flagStrict     = flag.Bool("strict", false, "fail on degenerate primitives instead of skipping them")
		flagDebug      = flag.Bool("debug", false, "enable debug logging")
		flagOpen       = flag.Bool("open", false, "open the output with the configured viewer")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := new(Config)
	if *flagConfig != "" {
		var err error
		if cfg, err = Load(*flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "geomplot: %v\n", err)
			os.Exit(1)
		}
	} else {
		ApplyDefaults(cfg)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = strings.ToLower(*flagFormat)
		case "views":
			cfg.Views = strings.Split(*flagViews, ",")
		case "dim":
			cfg.Dimension = *flagDim
		case "title":
			cfg.Title = *flagTitle
		case "strict":
			cfg.Strict = *flagStrict
		case "debug":
			cfg.Debug = *flagDebug
		}
	})

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "geomplot: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	views, err := cfg.Validate()
	if err != nil {
		logger.Fatal("bad configuration", zap.Error(err))
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			logger.Fatal("creating CPU profile", zap.Error(err))
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				logger.Fatal("creating heap profile", zap.Error(err))
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Parse inputs.
	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	ps, err := readInputs(paths, cfg.parserDim())
	if err != nil {
		logger.Fatal("reading input", zap.Error(err))
	}
	logger.Debug("read primitives", zap.Int("count", len(ps)), zap.Strings("inputs", paths))

	if cfg.Title == "" && !(len(paths) == 1 && paths[0] == "-") {
		cfg.Title = strings.Join(paths, " ")
	}

	// Build the scene.
	b := &scene.Builder{Logger: logger, Strict: cfg.Strict, Workers: cfg.Workers}
	s, err := b.Build(context.Background(), ps)
	if err != nil {
		logger.Fatal("rendering primitives", zap.Error(err))
	}
	if s.Skipped > 0 {
		logger.Info("skipped degenerate primitives", zap.Int("skipped", s.Skipped))
	}

	// Prepare for output.
	kind := outputKindOf(*flagTable, *flagRecords)
	out := *flagOut
	if out == "" && *flagOpen {
		tmp, err := os.CreateTemp("", "geomplot-*."+kind.ext(cfg.Format))
		if err != nil {
			logger.Fatal("creating output", zap.Error(err))
		}
		tmp.Close()
		out = tmp.Name()
	}
	f := os.Stdout
	if out != "" {
		f, err = os.Create(out)
		if err != nil {
			logger.Fatal("creating output", zap.Error(err))
		}
	} else if err := checkTerminal(f, kind, cfg.Format); err != nil {
		logger.Fatal("bad output", zap.Error(err))
	}

	err = writeOutput(f, kind, s, ps, views, cfg)
	if err == nil && f != os.Stdout {
		err = f.Close()
	}
	if err != nil {
		logger.Fatal("writing output", zap.String("path", out), zap.Error(err))
	}

	if *flagOpen {
		abs, err := filepath.Abs(out)
		if err == nil {
			err = openViewer(cfg.Viewer, abs)
		}
		if err != nil {
			logger.Fatal("opening viewer", zap.String("viewer", cfg.Viewer), zap.Error(err))
		}
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// readInputs parses the primitives in each of paths. The path "-"
// means standard input.
func readInputs(paths []string, dim int) ([]geom.Primitive, error) {
	parser := &record.Parser{Dim: dim}
	var ps []geom.Primitive
	for _, path := range paths {
		rs, err := func() ([]*record.Record, error) {
			f := os.Stdin
			if path != "-" {
				var err error
				f, err = os.Open(path)
				if err != nil {
					return nil, err
				}
				defer f.Close()
			}
			return parser.Parse(f)
		}()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		more, err := record.Primitives(rs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		ps = append(ps, more...)
	}
	return ps, nil
}
