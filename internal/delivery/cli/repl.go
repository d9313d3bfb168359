package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"staff-directory/internal/delivery/flows"
	"staff-directory/internal/delivery/router"
)

var ErrInput = errors.New("read input")

type REPL struct {
	Router router.Dispatcher
	In     io.Reader
	Out    io.Writer
	Logger *zap.Logger
	// Prompt is written before each read when non-empty.
	Prompt string
}

// Run reads and evaluates lines until exit, end of input, or a read error.
// Only the read error is returned, wrapped in ErrInput.
func (r *REPL) Run(ctx context.Context) error {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reader := bufio.NewReader(r.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.Prompt != "" {
			fmt.Fprint(r.Out, r.Prompt)
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("%w: %w", ErrInput, readErr)
		}
		if readErr != nil && strings.TrimSpace(line) == "" {
			logger.Debug("end of input")
			return nil
		}
		line = strings.TrimRight(line, "\r\n")

		res, err := r.Router.Dispatch(ctx, line)
		var usage *router.UsageError
		switch {
		case errors.As(err, &usage):
			fmt.Fprintln(r.Out, usage.Error())
			fmt.Fprintln(r.Out, flows.Help)
		case err != nil:
			logger.Error("command failed", zap.String("line", line), zap.Error(err))
			fmt.Fprintf(r.Out, "error: %v\n", err)
		}
		if res.Output != "" {
			fmt.Fprintln(r.Out, res.Output)
		}
		// A final line without a newline is still evaluated before stopping.
		if res.Status == router.Exit || readErr != nil {
			return nil
		}
	}
}
