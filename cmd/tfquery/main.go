// SPDX-License-Identifier: MIT

// Command tfquery loads a scene and resolves a transform between two of its
// frames. With -listen it also serves Prometheus metrics and an HTTP query
// endpoint until interrupted.
//
//	tfquery -scene robot.yaml -from world -to sensor -t 1.5
//	tfquery -config framegraph.yaml -listen :9100
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/framegraph/internal/config"
	"github.com/katalvlaran/framegraph/internal/logging"
	"github.com/katalvlaran/framegraph/internal/telemetry"
	"github.com/katalvlaran/framegraph/rigid"
	"github.com/katalvlaran/framegraph/scene"
	"github.com/katalvlaran/framegraph/tfgraph"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(runWithArgs(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func runWithArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tfquery", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "path to YAML config file")
	scenePath := fs.String("scene", "", "path to YAML scene (overrides the config's scene)")
	from := fs.String("from", "", "source frame")
	to := fs.String("to", "", "target frame")
	at := fs.Float64("t", 0, "query time; without it the ambient time is used")
	listen := fs.String("listen", "", "serve /metrics and /v1/transform on this address")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	timed := false
	fs.Visit(func(f *flag.Flag) { timed = timed || f.Name == "t" })

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logging.Configure(stderr, cfg.LogOptions())
	logger := logging.L()

	path := *scenePath
	if path == "" {
		path = cfg.Scene
		if path != "" && *cfgPath != "" && !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(*cfgPath), path)
		}
	}
	addr := *listen
	if addr == "" {
		addr = cfg.Metrics.Listen
	}
	query := *from != "" || *to != ""
	switch {
	case path == "":
		fmt.Fprintln(stderr, "error: no scene given (-scene or config scene)")
		fs.Usage()
		return 2
	case query && (*from == "" || *to == ""):
		fmt.Fprintln(stderr, "error: -from and -to go together")
		return 2
	case !query && addr == "":
		fmt.Fprintln(stderr, "error: nothing to do; give -from/-to or -listen")
		fs.Usage()
		return 2
	}

	doc, err := scene.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "error loading scene: %v\n", err)
		return 1
	}
	reg := prometheus.NewRegistry()
	metrics := telemetry.New(reg)
	opts := append(cfg.GraphOptions(), tfgraph.WithObserver(metrics))
	g, err := doc.Build(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error building graph: %v\n", err)
		return 1
	}
	logger.Info("scene loaded", "path", path, "frames", len(g.Frames()), "edges", len(g.Edges()))

	if query {
		var m mgl64.Mat4
		if timed {
			m, err = g.GetTransformAt(*from, *to, *at)
		} else {
			m, err = g.GetTransform(*from, *to)
		}
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		if err := printMatrix(stdout, m); err != nil {
			return 1
		}
	}

	if addr != "" {
		srv := &http.Server{
			Addr:              addr,
			Handler:           newMux(g, reg, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}
		if err := telemetry.Serve(ctx, srv, logger); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	return 0
}

// printMatrix writes m row by row.
func printMatrix(w io.Writer, m mgl64.Mat4) error {
	vals := rigid.RowMajor(m)
	for r := 0; r < 4; r++ {
		row := vals[r*4 : r*4+4]
		// +0 folds negative zeros
		if _, err := fmt.Fprintf(w, "% .6f % .6f % .6f % .6f\n", row[0]+0, row[1]+0, row[2]+0, row[3]+0); err != nil {
			return err
		}
	}
	return nil
}
