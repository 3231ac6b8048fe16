package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"quasm/internal/circuitfile"
	"quasm/internal/observ"
	"quasm/internal/qasm3"
)

var exportCmd = &cobra.Command{
	Use:   "export [flags] <circuit-file>...",
	Short: "Export circuit files to OpenQASM3",
	Long:  "Export one or more circuit description files (JSON or msgpack) to OpenQASM3 programs.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  exportExecution,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output file for a single input, output directory for several; default stdout")
	exportCmd.Flags().StringSlice("include", nil, "include files emitted in the header")
	exportCmd.Flags().Bool("no-constants", false, "render numeric parameters as plain decimals, never pi fractions")
	exportCmd.Flags().Int("jobs", 0, "maximum concurrent file exports (0 = number of CPUs)")
	exportCmd.Flags().Bool("timings", false, "print per-phase timings")
}

func exportExecution(cmd *cobra.Command, args []string) error {
	configureColor(cmd)

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	includes, err := cmd.Flags().GetStringSlice("include")
	if err != nil {
		return err
	}
	noConstants, err := cmd.Flags().GetBool("no-constants")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return err
	}

	opts := exportOptions{output: output, includes: includes, noConstants: noConstants}

	// Manifest values fill in whatever the command line left untouched.
	manifest, found, err := loadProjectManifest(".")
	if err != nil {
		return err
	}
	if found {
		applyManifest(&opts, cmd.Flags().Changed, manifest.Config.Export)
	}

	exporter := qasm3.Exporter{Includes: opts.includes, DisableConstants: opts.noConstants}

	if len(args) == 1 {
		return exportOne(&exporter, args[0], opts.output, showTimings)
	}
	if opts.output == "" {
		return fmt.Errorf("exporting several files needs --output pointing at a directory")
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return exportMany(&exporter, args, opts.output, jobs)
}

// exportOptions carries the export settings after flags and manifest merge.
type exportOptions struct {
	output      string
	includes    []string
	noConstants bool
}

// applyManifest fills in settings the user did not pass on the command
// line. changed reports whether a flag was given explicitly, so an explicit
// --no-constants=false still beats a manifest enabling it.
func applyManifest(opts *exportOptions, changed func(name string) bool, cfg exportConfig) {
	if !changed("include") {
		opts.includes = cfg.Includes
	}
	if !changed("no-constants") {
		opts.noConstants = cfg.DisableConstants
	}
	if !changed("output") {
		opts.output = cfg.Output
	}
}

// exportOne runs the single-file path: stdout by default, a file with -o.
func exportOne(exporter *qasm3.Exporter, path, output string, showTimings bool) error {
	timer := observ.NewTimer()

	phase := timer.Begin("decode")
	circ, err := circuitfile.Load(path)
	if err != nil {
		return err
	}
	timer.End(phase, fmt.Sprintf("%d ops", len(circ.Data)))

	phase = timer.Begin("export")
	text, err := exporter.Export(circ)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	timer.End(phase, "")

	phase = timer.Begin("write")
	if output == "" {
		_, err = os.Stdout.WriteString(text)
	} else {
		err = os.WriteFile(output, []byte(text), 0o644)
	}
	timer.End(phase, "")
	if err != nil {
		return err
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

// exportMany exports files concurrently into a directory. Each transform
// stays synchronous; only distinct files run in parallel.
func exportMany(exporter *qasm3.Exporter, paths []string, outDir string, jobs int) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	group, _ := errgroup.WithContext(context.Background())
	group.SetLimit(jobs)
	for _, path := range paths {
		path := path
		group.Go(func() error {
			circ, err := circuitfile.Load(path)
			if err != nil {
				return err
			}
			text, err := exporter.Export(circ)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out := filepath.Join(outDir, qasmName(path))
			if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
				return err
			}
			fmt.Printf("%s %s -> %s\n", color.GreenString("exported"), path, out)
			return nil
		})
	}
	return group.Wait()
}

func qasmName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".qasm"
}
