package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hitushen/opscut/internal/content"
	"github.com/hitushen/opscut/internal/logging"
	"github.com/hitushen/opscut/internal/models"
	"github.com/hitushen/opscut/internal/report"
	"github.com/hitushen/opscut/internal/scanner"
	"github.com/hitushen/opscut/internal/views"
)

// errEmptyDomain is returned when the domain argument is blank after trimming.
var errEmptyDomain = errors.New("domain is required")

type scanOptions struct {
	contentFile string
	instant     bool
	quiet       bool
	output      string
}

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	opts := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan [domain]",
		Short: "Replay the infrastructure scan and print a Markdown report",
		Long: `Scan replays the scripted infrastructure scan for a domain, printing each
step as it runs, then writes the results as Markdown.

Examples:
  # Replay with the normal step timing
  opscut scan example.com

  # Skip the waits and write the report to a file
  opscut scan --instant -o report.md example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.ConfigureRuntime()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runScan(ctx, cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.contentFile, "content", "c", "", "content override file (YAML)")
	cmd.Flags().BoolVar(&opts.instant, "instant", false, "skip step delays")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "only print the report")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to a file instead of stdout")
	return cmd
}

func runScan(ctx context.Context, out io.Writer, domain string, opts *scanOptions) error {
	bundle, err := content.Resolve(opts.contentFile)
	if err != nil {
		return fmt.Errorf("content: %w", err)
	}

	var seqOpts []scanner.Option
	if opts.instant {
		seqOpts = append(seqOpts, scanner.Instant())
	}
	seq := scanner.NewSequencer(bundle.Script, seqOpts...)
	mgr := scanner.NewManager(seq, 1)
	defer mgr.Close()

	progressOut := out
	if opts.quiet {
		progressOut = io.Discard
	}
	obs := newTerminalObserver(progressOut, len(seq.Script().Steps))
	if !opts.instant {
		obs.eta = seq.Script().Duration()
	}
	ctrl := views.NewController(mgr, obs)
	defer ctrl.Close()

	if !ctrl.StartScan(domain) {
		return errEmptyDomain
	}

	var result models.ScanResult
	select {
	case result = <-obs.done:
	case <-ctx.Done():
		ctrl.BackToLanding()
		return fmt.Errorf("scan interrupted: %w", ctx.Err())
	}

	if opts.output == "" {
		return report.WriteMarkdown(out, result, bundle.Catalog.Results.Resources)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.WriteMarkdown(f, result, bundle.Catalog.Results.Resources); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	fmt.Fprintf(progressOut, "report written to %s\n", opts.output)
	return nil
}

// terminalObserver 将扫描进度打印到终端。回调由控制器串行触发。
type terminalObserver struct {
	out   io.Writer
	total int
	eta   time.Duration
	done  chan models.ScanResult
}

func newTerminalObserver(out io.Writer, total int) *terminalObserver {
	return &terminalObserver{out: out, total: total, done: make(chan models.ScanResult, 1)}
}

func (o *terminalObserver) ViewChanged(s models.Snapshot) {
	if s.View != models.ViewScanning {
		return
	}
	if o.eta > 0 {
		fmt.Fprintf(o.out, "Scanning %s (about %s)\n", s.Domain, o.eta)
		return
	}
	fmt.Fprintf(o.out, "Scanning %s\n", s.Domain)
}

func (o *terminalObserver) ScanStepStarted(index int, label string) {
	fmt.Fprintf(o.out, "[%d/%d] %s\n", index+1, o.total, label)
}

func (o *terminalObserver) ScanProgress(p models.Progress) {
	fmt.Fprintf(o.out, "      %3.0f%%  %s\n", p.Percent, p.Discovery)
}

func (o *terminalObserver) ScanComplete(result models.ScanResult) {
	fmt.Fprintf(o.out, "Scan complete: %s potential savings\n\n", report.Money(result.Savings))
	select {
	case o.done <- result:
	default:
	}
}
