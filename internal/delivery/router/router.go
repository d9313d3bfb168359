package router

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type Status int

const (
	Continue Status = iota
	Exit
)

// Result is the outcome of one command line. Output may be empty.
type Result struct {
	Status Status
	Output string
}

// HandlerFunc receives the tokens that follow the verb.
type HandlerFunc func(ctx context.Context, args []string) (Result, error)

// UsageError marks a malformed command. Callers report it and keep reading.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Reason
}

func Usagef(format string, args ...any) error {
	return &UsageError{Reason: fmt.Sprintf(format, args...)}
}

// Dispatcher evaluates one command line.
type Dispatcher interface {
	Dispatch(ctx context.Context, line string) (Result, error)
}

type CommandRouter struct {
	handlers map[string]HandlerFunc
	logger   *zap.Logger
}

func New(logger *zap.Logger) *CommandRouter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommandRouter{handlers: make(map[string]HandlerFunc), logger: logger}
}

// Register binds verb, matched case-insensitively, to h.
func (r *CommandRouter) Register(verb string, h HandlerFunc) {
	r.handlers[strings.ToLower(verb)] = h
}

// Dispatch splits line on whitespace and runs the handler for its first token.
func (r *CommandRouter) Dispatch(ctx context.Context, line string) (Result, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Result{Status: Continue}, Usagef("empty command")
	}
	verb := strings.ToLower(tokens[0])
	r.logger.Debug("dispatch", zap.String("verb", verb), zap.Int("args", len(tokens)-1))

	h, ok := r.handlers[verb]
	if !ok {
		return Result{Status: Continue}, Usagef("unknown command %q", tokens[0])
	}
	res, err := h(ctx, tokens[1:])
	if err != nil {
		res.Status = Continue
	}
	return res, err
}
