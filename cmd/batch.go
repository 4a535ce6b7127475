package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/astrokit/unitconv"
	"github.com/astrokit/unitconv/config"
	"github.com/astrokit/unitconv/log"
)

// Flags for unitconv batch
var (
	Jobs  int  // Maximum number of conversions evaluated concurrently
	Watch bool // Re-run when the config changes
)

// NewCmdBatch returns the [cobra.Command] used for converting many values in
// one run.
//
// Each input line is
//
//	<value> <from> <to> [wave=<value>@<unit>] [freq=...] [diam=...] [radius=...] [pix=...]
//
// Fields are whitespace-separated, so compound units must use the slash
// notation ("erg/s/cm2/A"). Blank lines and lines starting with # are
// skipped. Results are printed in input order, one per line; a line that
// fails prints the error instead.
func NewCmdBatch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert many values from a file or stdin",
		Long: `Convert many values in one run, reading lines from a file or stdin.

Each line is "<value> <from> <to>" followed by optional reference quantities
of the form "wave=4552@A". Compound units must use the slash notation, e.g.
erg/s/cm2/A, since fields are whitespace-separated.

With --watch, the run repeats whenever the unit config file changes, until
interrupted.`,
		Example: `  echo "1 km cm" | unitconv batch
  unitconv batch conversions.txt --jobs 8
  unitconv batch conversions.txt --config units.yaml --watch`,
		GroupID: "commands",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runBatch,
	}

	cmd.Flags().SortFlags = false
	addConfigFlags(cmd.Flags())
	cmd.Flags().IntVarP(&Jobs, "jobs", "j", 4, "Maximum concurrent conversions")
	cmd.Flags().BoolVarP(&Watch, "watch", "W", false, "Re-run when the config changes")

	cmd.MarkFlagFilename("config", "yaml", "yml")

	return cmd
}

// A request is one parsed input line.
type request struct {
	value    float64
	from, to string
	opts     []unitconv.Option
}

func parseRequest(line string) (*request, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, fmt.Errorf("want <value> <from> <to>, got %q", line)
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, err
	}
	req := &request{value: value, from: fields[1], to: fields[2]}
	for _, f := range fields[3:] {
		key, rest, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("reference %q: want key=<value>@<unit>", f)
		}
		mk, known := refConstructors[key]
		if !known {
			return nil, fmt.Errorf("unknown reference %q", key)
		}
		v, unit, err := parseQuantity(rest)
		if err != nil {
			return nil, err
		}
		req.opts = append(req.opts, mk(v, unit))
	}
	return req, nil
}

func readRequests(r io.Reader) ([]*request, []error) {
	var (
		reqs []*request
		errs []error
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		req, err := parseRequest(line)
		reqs = append(reqs, req)
		errs = append(errs, err)
	}
	if err := sc.Err(); err != nil {
		reqs = append(reqs, nil)
		errs = append(errs, err)
	}
	return reqs, errs
}

// evaluate runs the requests through the converter, at most Jobs at a time.
// The engine is read-only after construction, so the requests can run
// concurrently without synchronization.
func evaluate(ctx context.Context, conv *unitconv.Converter, reqs []*request, errs []error) []string {
	results := make([]string, len(reqs))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(Jobs)
	for i, req := range reqs {
		i, req := i, req
		if errs[i] != nil {
			results[i] = "error: " + errs[i].Error()
			continue
		}
		g.Go(func() error {
			out, err := conv.Convert(req.from, req.to, req.value, req.opts...)
			if err != nil {
				results[i] = "error: " + err.Error()
				return nil
			}
			results[i] = formatResult(out)
			return nil
		})
	}
	g.Wait()
	return results
}

func runBatch(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	reqs, errs := readRequests(in)

	conv, err := loadConverter()
	if err != nil {
		return err
	}

	print := func(conv *unitconv.Converter) int {
		var failed int
		for _, res := range evaluate(cmd.Context(), conv, reqs, errs) {
			if strings.HasPrefix(res, "error: ") {
				failed++
			}
			cmd.Println(res)
		}
		return failed
	}
	failed := print(conv)

	if !Watch {
		if failed > 0 {
			return &ExitError{
				Err:  fmt.Errorf("%d of %d conversions failed", failed, len(reqs)),
				Code: 1,
			}
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Watching config", "path", ConfigPath)
	err = config.Watch(ctx, func(cfg *config.Config) {
		conv, err := unitconv.New(cfg)
		if err != nil {
			log.Error("Rebuilding tables", err)
			return
		}
		print(conv)
	}, ConfigPath...)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
