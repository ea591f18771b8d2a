package cli

import (
	"context"
	"io"
	"time"

	"github.com/agbru/numgroup/internal/config"
	apperrors "github.com/agbru/numgroup/internal/errors"
	"github.com/agbru/numgroup/internal/format"
	"github.com/agbru/numgroup/internal/logging"
	"github.com/agbru/numgroup/internal/ui"
)

// Run formats the numbers named by cfg, read from its positional inputs or
// from in, and reports them on out.
//
// Parameters:
//   - ctx: Bounds the run; cancellation stops the batch.
//   - cfg: The application configuration.
//   - in: Standard input, read when cfg has no positional inputs.
//   - out: The writer for results.
//   - logger: Receives diagnostics.
//
// Returns:
//   - error: An IOError, a context error, or nil.
func Run(ctx context.Context, cfg config.AppConfig, in io.Reader, out io.Writer, logger logging.Logger) error {
	inputs := cfg.Inputs
	if cfg.ReadsStdin() {
		var err error
		if inputs, err = ReadInputs(in); err != nil {
			logger.Error("reading input failed", err)
			return err
		}
	}

	mode := cfg.Mode()
	logger.Debug("formatting inputs",
		logging.Int("count", len(inputs)),
		logging.String("mode", mode.String()),
		logging.Int("workers", cfg.Workers))

	start := time.Now()
	outputs, err := format.FormatBatch(ctx, inputs, mode, cfg.Workers)
	if err != nil {
		logger.Error("formatting interrupted", err)
		return apperrors.WrapError(err, "format %d inputs", len(inputs))
	}
	elapsed := time.Since(start)

	logger.Debug("formatting done",
		logging.Int("count", len(outputs)),
		logging.Float64("seconds", elapsed.Seconds()))

	outputConfig := OutputConfig{
		OutputFile: cfg.OutputFile,
		Quiet:      cfg.Quiet,
		Verbose:    cfg.Verbose,
	}
	if err := DisplayResultsWithConfig(out, NewResults(inputs, outputs), mode, elapsed, ui.NewStyles(out, false), outputConfig); err != nil {
		logger.Error("saving results failed", err, logging.String("file", cfg.OutputFile))
		return err
	}
	return nil
}
