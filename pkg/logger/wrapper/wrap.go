package wrap

import (
	"context"
	"errors"
)

// Error wraps an error with the current LogCtx from the context.
// If err already carries a LogCtx, the context of the deepest wrap is replaced.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	lc, _ := ctx.Value(LogCtxKey).(LogCtx)

	var e *errorWithLogCtx
	if errors.As(err, &e) {
		e.logCtx = lc
		return err
	}

	return &errorWithLogCtx{
		err:    err,
		logCtx: lc,
	}
}
