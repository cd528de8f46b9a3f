// Package main runs an interactive demo of cell frame and visibility
// tracking in a recycling grid.
//
// Usage:
//
//	cellframes [-n count] [-c columns] [-v]
//
// Keys:
//
//	j/k, arrows          scroll one line
//	space/b, PgDn/PgUp   scroll one page
//	g/G, Home/End        jump to top/bottom
//	s                    shuffle items (swaps cells without scrolling)
//	r                    reverse items
//	+/-                  add/remove a row of items
//	a                    toggle auto-scroll
//	p                    print the visible frames as JSON
//	q, Esc, Ctrl+C       quit
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/cellframes/internal/debug"
	"github.com/grindlemire/cellframes/internal/loop"
	"github.com/grindlemire/cellframes/internal/term"
)

const usage = `cellframes - visibility and frame tracking in a recycling grid

Usage:
  cellframes [options]

Options:
  -n <count>    Number of items (default 60)
  -c <columns>  Number of columns (default 4)
  -v            Write a debug log to cellframes-debug.log
  -h            Show this help message

Set CELLFRAMES_DEBUG=<path> to choose the debug log location.
`

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n%s", err, usage)
		os.Exit(1)
	}
	if cfg.help {
		fmt.Print(usage)
		return
	}

	transcript, err := run(cfg)
	for _, line := range transcript {
		fmt.Println(line)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	items   int
	columns int
	verbose bool
	help    bool
}

// parseArgs parses the command line the same way for every flag: a name,
// then its value when it takes one.
func parseArgs(args []string) (config, error) {
	cfg := config{items: 60, columns: 4}
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-n", "-c":
			if i+1 >= len(args) {
				return cfg, fmt.Errorf("%s needs a value", arg)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 {
				return cfg, fmt.Errorf("%s must be a positive number, got %q", arg, args[i])
			}
			if arg == "-n" {
				cfg.items = n
			} else {
				cfg.columns = n
			}
		case "-v", "--verbose":
			cfg.verbose = true
		case "-h", "--help", "help":
			cfg.help = true
		default:
			return cfg, fmt.Errorf("unknown argument %q", arg)
		}
	}
	return cfg, nil
}

// run owns the terminal for the lifetime of the demo and returns everything
// the print action produced.
func run(cfg config) ([]string, error) {
	if cfg.verbose && os.Getenv(debug.EnvVar) == "" {
		if err := debug.Init("cellframes-debug.log"); err != nil {
			return nil, err
		}
	}
	defer debug.Close()

	t, err := term.Open()
	if err != nil {
		return nil, err
	}
	defer t.Close()

	l, err := loop.New(loop.WithFrameRate(60))
	if err != nil {
		return nil, err
	}

	d, err := newDemo(t, l, newItems(cfg.items), cfg.columns)
	if err != nil {
		return nil, err
	}
	defer d.close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return t.ReadKeys(ctx, func(ev term.KeyEvent) {
			l.Queue(func() { d.handleKey(ev) })
		})
	})
	g.Go(func() error {
		defer cancel()
		err := l.Run(ctx, d.frame)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	err = g.Wait()
	return d.transcript, err
}
