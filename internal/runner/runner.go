package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/kdouveno/selescript/internal/document"
	"github.com/kdouveno/selescript/internal/host"
	"github.com/kdouveno/selescript/internal/logging"
	"github.com/kdouveno/selescript/internal/match"
	"github.com/kdouveno/selescript/internal/params"
	"github.com/kdouveno/selescript/internal/script"
	"github.com/kdouveno/selescript/internal/selection"
)

// PatternPlaceholder is shown in the pattern prompt.
const PatternPlaceholder = "/pattern/flags"

// Result describes a completed run.
type Result struct {
	RunID  uuid.UUID
	Script string

	// Edits are the committed edits in the order they were applied.
	Edits []document.Edit

	// Pattern is the pattern used, in /pattern/flags form, or empty.
	Pattern string

	// Selections is the selection set after the run. It is nil when
	// selections were left alone: the run used no pattern, or the host had
	// no selection and the script selected no match.
	Selections []selection.Selection
}

// Runner runs scripts against an editor. Runs are serialised.
type Runner struct {
	mu sync.Mutex

	registry *script.Registry
	editor   host.Editor
	prompter host.Prompter
	logger   *logging.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the runner logger.
func WithLogger(logger *logging.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithRegistry sets the script registry. By default the runner has its own.
func WithRegistry(registry *script.Registry) Option {
	return func(r *Runner) {
		r.registry = registry
	}
}

// New creates a Runner for editor that asks questions through prompter.
func New(editor host.Editor, prompter host.Prompter, opts ...Option) *Runner {
	r := &Runner{
		editor:   editor,
		prompter: prompter,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.OrNull(r.logger).WithComponent("runner")
	if r.registry == nil {
		r.registry = script.NewRegistry(r.logger)
	}
	return r
}

// Registry returns the registry used to load scripts.
func (r *Runner) Registry() *script.Registry {
	return r.registry
}

// Run executes the script at path.
//
// Errors are *script.LoadError, *match.PatternError, *script.ScriptError,
// host.ErrCancelled, a context error, or ErrApply. No edit is applied when
// Run returns an error.
func (r *Runner) Run(ctx context.Context, path string) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := &Result{RunID: uuid.New(), Script: path}
	log := r.logger.WithFields(map[string]any{
		"run":    res.RunID.String(),
		"script": path,
	})

	entry, err := r.registry.Load(path)
	if err != nil {
		return nil, err
	}

	state := script.NewState()
	defer state.Close()
	bridge := script.NewBridge(state.L)
	bridge.InstallRegexp()

	mod, err := r.registry.Instantiate(ctx, state, entry)
	if err != nil {
		return nil, err
	}

	doc := r.editor.Document()
	batch := document.NewBatch(doc)
	records := selection.Build(doc, r.editor.Selections(), batch)
	log.Debug("built %d record(s)", len(records))

	pattern, err := r.resolvePattern(ctx, mod)
	if err != nil {
		return nil, err
	}
	if pattern != nil {
		match.DecorateAll(pattern, records, doc)
		res.Pattern = pattern.String()
	}

	values, err := params.Bind(ctx, r.prompter, mod.Params)
	if err != nil {
		return nil, err
	}

	selections := bridge.Records(records)
	ret, err := state.Call(ctx, mod.Fn, mod.Args(selections, values)...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &script.ScriptError{Path: path, Err: err}
	}
	if replacements, ok := bridge.Replacements(ret, len(records), selections); ok {
		for i, text := range replacements {
			records[i].Replace(text)
		}
	}

	edits, err := batch.Edits()
	if err != nil {
		return nil, &script.ScriptError{Path: path, Err: err}
	}

	var committer *Committer
	if pattern != nil {
		committer = NewCommitter(records, doc)
	}

	if len(edits) > 0 {
		if err := r.editor.Apply(edits); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrApply, err)
		}
	}
	res.Edits = edits

	if committer != nil {
		if sels := committer.Selections(edits, r.editor.Document()); len(sels) > 0 {
			res.Selections = sels
			r.editor.SetSelections(sels)
		}
	}

	log.Info("applied %d edit(s)", len(edits))
	return res, nil
}

// resolvePattern returns the module's pattern, prompting for one when the
// module only supplies a label. It returns nil when no pattern is wanted.
func (r *Runner) resolvePattern(ctx context.Context, mod *script.Module) (*match.Pattern, error) {
	if !mod.WantsPattern() {
		return nil, nil
	}
	if mod.Pattern != nil {
		return mod.Pattern, nil
	}

	input, err := r.prompter.Input(ctx, host.InputOptions{
		Prompt:      mod.PatternLabel,
		Placeholder: PatternPlaceholder,
	})
	if err != nil {
		return nil, err
	}
	return match.ParsePattern(input)
}
