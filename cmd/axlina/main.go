// Package main provides a smoke test for the axlina topology packages.
//
// It builds a source and a target layer, wires them with a linker and
// evaluates the target layer once against a constant input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/axlina/axlina/activation"
	"github.com/axlina/axlina/topology"
)

const version = "v0.0.1-dev"

// exitError carries a process exit code.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

type config struct {
	source     int
	target     int
	fanIn      int
	activation string
	linker     string
	input      float64
	logFormat  string
	logLevel   string
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.msg)
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out, logOut io.Writer, args []string) error {
	cfg, done, err := parse(out, args)
	if err != nil || done {
		return err
	}

	logger, err := newLogger(logOut, cfg.logFormat, cfg.logLevel)
	if err != nil {
		return &exitError{code: 2, msg: err.Error()}
	}

	transfer, err := activation.NewRegistry[float64]().Get(cfg.activation)
	if err != nil {
		return &exitError{code: 2, msg: err.Error()}
	}
	linker, err := topology.LinkerByName[float64](cfg.linker)
	if err != nil {
		return &exitError{code: 2, msg: err.Error()}
	}

	nodeOpts := topology.WithNodeOptions(
		topology.WithTransfer(transfer),
		topology.WithBias(0.0),
	)
	source, err := topology.NewLayer(cfg.source, topology.WithFanIn[float64](cfg.fanIn), nodeOpts)
	if err != nil {
		return fmt.Errorf("build source layer: %w", err)
	}
	target, err := topology.NewLayer(cfg.target, topology.WithFanIn[float64](cfg.source), nodeOpts)
	if err != nil {
		return fmt.Errorf("build target layer: %w", err)
	}
	logger.Debug("Layers built.", "source", source.ID(), "target", target.ID())

	conn, err := topology.NewConnection(source, target,
		topology.WithLinker(linker),
		topology.WithValidation[float64]())
	if err != nil {
		return fmt.Errorf("connect layers: %w", err)
	}

	edges := 0
	for _, n := range conn.Fanin() {
		edges += n
	}
	logger.Info("Connection built.",
		"source_size", source.Size(),
		"target_size", target.Size(),
		"edges", edges,
		"linker", cfg.linker,
		"activation", cfg.activation)

	outputs, err := evaluate(source, target, conn, cfg.fanIn, cfg.input)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	for i, v := range outputs {
		fmt.Fprintf(out, "target[%d] = %g\n", i, v)
	}
	return nil
}

// evaluate feeds a constant input through the source nodes wired to each
// target node and returns the target outputs.
//
// conn only holds weak references, so source and target are taken here to
// keep both layers reachable until every edge has been resolved.
func evaluate(source, target *topology.Layer[float64], conn *topology.Connection[float64], fanIn int, value float64) ([]float64, error) {
	defer runtime.KeepAlive(source)

	input := make([]float64, fanIn)
	for i := range input {
		input[i] = value
	}

	outputs := make([]float64, conn.Len())
	for i := range outputs {
		feeding, err := conn.Resolve(i)
		if err != nil {
			return nil, err
		}
		signals := make([]float64, len(feeding))
		for j, n := range feeding {
			if signals[j], err = n.Compute(input); err != nil {
				return nil, fmt.Errorf("source node %d: %w", j, err)
			}
		}

		node, err := target.At(i)
		if err != nil {
			return nil, err
		}
		if outputs[i], err = node.Compute(signals); err != nil {
			return nil, fmt.Errorf("target node %d: %w", i, err)
		}
	}
	return outputs, nil
}

func parse(out io.Writer, args []string) (*config, bool, error) {
	fs := flag.NewFlagSet("axlina", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "axlina %s - feed-forward topology smoke test\n\nUsage:\n  axlina [options]\n\nOptions:\n", version)
		fs.PrintDefaults()
	}

	cfg := &config{}
	fs.IntVar(&cfg.source, "source", 16, "Number of nodes in the source layer.")
	fs.IntVar(&cfg.target, "target", 16, "Number of nodes in the target layer.")
	fs.IntVar(&cfg.fanIn, "fanin", 0, "Fan-in of every source node.")
	fs.StringVar(&cfg.activation, "activation", activation.DefaultName, "Transfer function for every node.")
	fs.StringVar(&cfg.linker, "linker", topology.FullLinkerName, "Linker used to wire the layers.")
	fs.Float64Var(&cfg.input, "input", 1, "Constant value fed to every source input.")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	showVersion := fs.Bool("version", false, "Print the version and exit.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &exitError{code: 2, msg: err.Error()}
	}
	if *showVersion {
		fmt.Fprintf(out, "axlina %s\n", version)
		return nil, true, nil
	}
	return cfg, false, nil
}

func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
