/*
Copyright (c) 2026 moyaru <rbffo@icloud.com>
*/

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/app/output"
	"github.com/MOYARU/tenancyscore/internal/app/ui"
	"github.com/MOYARU/tenancyscore/internal/report"
	"github.com/spf13/cobra"
)

var (
	batchWorkers int
	batchJSON    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Score every request JSON file in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, reqs, decodeErrs, err := readRequestDir(args[0])
		if err != nil {
			return err
		}
		if len(reqs) == 0 {
			return fmt.Errorf("no *.json requests in %s", args[0])
		}
		settings, sanitizer, err := loadSettings(configPath)
		if err != nil {
			return err
		}

		ctx, cancel := ui.WaitForCancel(cmd.Context())
		defer cancel()

		start := time.Now()
		items, err := report.Batch(ctx, reqs, settings.Scoring, batchWorkers, report.WithSanitizer(sanitizer))
		if err != nil {
			return err
		}
		for i, derr := range decodeErrs {
			items[i] = report.BatchItem{Index: i, Err: derr, Error: derr.Error()}
		}

		if batchJSON {
			return output.WriteJSON(cmd.OutOrStdout(), items)
		}
		p := ui.Palette{Enabled: ui.ColorEnabled(os.Stdout)}
		output.PrintBatch(cmd.OutOrStdout(), names, items, p)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", p.Paint(ui.ColorGray, fmt.Sprintf("Scored %d requests in %.2fs", len(items), time.Since(start).Seconds())))
		return nil
	},
}

// readRequestDir decodes each *.json file in dir in name order. A file that
// fails to decode leaves an empty request in its slot and its error under the
// same index, so the batch reports the real cause in place.
func readRequestDir(dir string) ([]string, []analysis.Request, map[int]error, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, nil, nil, err
	}
	sort.Strings(paths)

	names := make([]string, 0, len(paths))
	reqs := make([]analysis.Request, 0, len(paths))
	decodeErrs := make(map[int]error)
	for i, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open %s: %w", path, err)
		}
		req, err := analysis.DecodeRequest(f)
		f.Close()
		if err != nil {
			decodeErrs[i] = err
			req = analysis.Request{}
		}
		names = append(names, filepath.Base(path))
		reqs = append(reqs, req)
	}
	return names, reqs, decodeErrs, nil
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "Requests scored in parallel")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Output results as JSON")
}
