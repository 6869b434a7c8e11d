// Package params collects values for a script's extra parameters.
package params

import (
	"context"
	"fmt"

	"github.com/kdouveno/selescript/internal/host"
)

// Bind prompts for each name in order and returns the answers in the same
// order. The first cancelled or failed prompt stops the sequence and its
// error is returned; no further prompts are shown.
func Bind(ctx context.Context, prompter host.Prompter, names []string) ([]string, error) {
	values := make([]string, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := prompter.Input(ctx, host.InputOptions{Prompt: name, Placeholder: name})
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		values = append(values, v)
	}
	return values, nil
}
