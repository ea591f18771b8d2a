package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/agbru/numgroup/internal/errors"
	"github.com/agbru/numgroup/internal/format"
	"github.com/agbru/numgroup/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the results (empty for no file output).
	OutputFile string
	// Quiet prints only the grouped values and no confirmation messages.
	Quiet bool
	// Verbose prints each input next to its grouped value and a summary.
	Verbose bool
}

// Result pairs an input with its grouped form.
type Result struct {
	Input  string
	Output string
}

// NewResults zips inputs and outputs into Results. Both slices must have the
// same length.
func NewResults(inputs, outputs []string) []Result {
	results := make([]Result, len(inputs))
	for i := range inputs {
		results[i] = Result{Input: inputs[i], Output: outputs[i]}
	}
	return results
}

// FormatQuietResults returns the grouped values, one per line.
func FormatQuietResults(results []Result) string {
	var b strings.Builder
	for _, r := range results {
		b.WriteString(r.Output)
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatSummary describes a run, e.g. "3 values grouped (allocate) in 12µs".
func FormatSummary(count int, mode format.Mode, elapsed time.Duration) string {
	noun := "values"
	if count == 1 {
		noun = "value"
	}
	return fmt.Sprintf("%s %s grouped (%s) in %s",
		format.FormatNumberString(fmt.Sprint(count)), noun, mode, format.FormatExecutionDuration(elapsed))
}

// DisplayResults writes results to out. Verbose mode shows every input with
// its grouped value followed by a summary line; otherwise only the grouped
// values are written.
func DisplayResults(out io.Writer, results []Result, mode format.Mode, elapsed time.Duration, styles ui.Styles, config OutputConfig) {
	if !config.Verbose {
		fmt.Fprint(out, FormatQuietResults(results))
		return
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s %s %s\n",
			styles.Input.Render(r.Input), styles.Arrow.Render("→"), styles.Output.Render(r.Output))
	}
	fmt.Fprintf(out, "\n%s\n", styles.Summary.Render(FormatSummary(len(results), mode, elapsed)))
}

// WriteResultsToFile writes the grouped values to config.OutputFile behind a
// short comment header. Missing parent directories are created. It does
// nothing when no output file is configured.
func WriteResultsToFile(results []Result, mode format.Mode, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.IOError{Op: "create directory", Path: dir, Cause: err}
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return apperrors.IOError{Op: "create output file", Path: config.OutputFile, Cause: err}
	}
	defer file.Close()

	if err := writeResults(file, results, mode); err != nil {
		return apperrors.IOError{Op: "write results", Path: config.OutputFile, Cause: err}
	}
	if err := file.Close(); err != nil {
		return apperrors.IOError{Op: "close output file", Path: config.OutputFile, Cause: err}
	}
	return nil
}

// writeResults writes the comment header and one grouped value per line.
// bufio.Writer keeps the first write error, so checking Flush covers every
// write.
func writeResults(w io.Writer, results []Result, mode format.Mode) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Grouped numbers\n")
	fmt.Fprintf(bw, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(bw, "# Mode: %s\n", mode)
	fmt.Fprintf(bw, "# Count: %d\n\n", len(results))
	bw.WriteString(FormatQuietResults(results))
	return bw.Flush()
}

// DisplayResultsWithConfig displays results and saves them to a file when
// one is configured.
func DisplayResultsWithConfig(out io.Writer, results []Result, mode format.Mode, elapsed time.Duration, styles ui.Styles, config OutputConfig) error {
	DisplayResults(out, results, mode, elapsed, styles, config)

	if config.OutputFile == "" {
		return nil
	}
	if err := WriteResultsToFile(results, mode, config); err != nil {
		return err
	}
	if !config.Quiet {
		fmt.Fprintf(out, "%s\n", styles.Success.Render("✓ Results saved to: "+config.OutputFile))
	}
	return nil
}
