// Command devview lays a row matrix view over host or accelerator memory
// and prints it, or opens an interactive editor over it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/devmem"
	"github.com/wippyai/devmem/device"
	"github.com/wippyai/devmem/hostalloc"
	"github.com/wippyai/devmem/launch"
)

func main() {
	var (
		rows        = flag.Int("rows", 3, "Number of rows")
		cols        = flag.Int("cols", 4, "Number of columns")
		space       = flag.String("space", "host", "Memory space: host or device")
		pinned      = flag.Bool("pinned", false, "Use page-locked host memory (host space only)")
		selRow      = flag.Int("row", -1, "Row to print (-1 for none)")
		selCol      = flag.Int("col", -1, "Column to print (-1 for none)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *rows <= 0 || *cols <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: devview [-rows n] [-cols n] [-space host|device] [-pinned] [-row r] [-col c]")
		fmt.Fprintln(os.Stderr, "       devview -i  (interactive mode)")
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
		defer func() { _ = log.Sync() }()
	}
	hostalloc.SetLogger(log)
	device.SetLogger(log)
	launch.SetLogger(log)

	opts := gridOptions{
		rows:   *rows,
		cols:   *cols,
		space:  *space,
		pinned: *pinned,
		log:    log,
	}

	if *interactive {
		if err := runInteractive(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(opts, *selRow, *selCol); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts gridOptions, selRow, selCol int) error {
	ctx := context.Background()

	g, err := newGrid(ctx, opts)
	if err != nil {
		return err
	}
	defer g.Close(ctx)

	r := renderer{styled: term.IsTerminal(int(os.Stdout.Fd()))}
	fmt.Println(r.header(g))
	fmt.Printf("build target: %s\n\n", devmem.Target())
	fmt.Print(r.matrix(g, selRow, selCol))
	if s := r.slices(g, selRow, selCol); s != "" {
		fmt.Println()
		fmt.Print(s)
	}
	return nil
}
