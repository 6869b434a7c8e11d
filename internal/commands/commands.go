// Package commands implements the user-facing create, edit and run commands.
//
// Every command reports its own failures through the host notifier. A
// cancelled prompt ends the command quietly.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/kdouveno/selescript/internal/host"
	"github.com/kdouveno/selescript/internal/logging"
	"github.com/kdouveno/selescript/internal/runner"
	"github.com/kdouveno/selescript/internal/storage"
)

// ErrNoScripts is returned when a list command finds no scripts.
var ErrNoScripts = errors.New("no scripts found")

// Commands binds the commands to a store, a runner and the host UI.
type Commands struct {
	store    *storage.Store
	runner   *runner.Runner
	prompter host.Prompter
	notifier host.Notifier
	opener   host.Opener
	logger   *logging.Logger
}

// Config holds the collaborators of Commands.
type Config struct {
	Store    *storage.Store
	Runner   *runner.Runner
	Prompter host.Prompter
	Notifier host.Notifier
	Opener   host.Opener
	Logger   *logging.Logger
}

// New creates Commands from cfg.
func New(cfg Config) *Commands {
	return &Commands{
		store:    cfg.Store,
		runner:   cfg.Runner,
		prompter: cfg.Prompter,
		notifier: cfg.Notifier,
		opener:   cfg.Opener,
		logger:   logging.OrNull(cfg.Logger).WithComponent("commands"),
	}
}

// Create asks for a name, writes the script template and opens the new file.
func (c *Commands) Create(ctx context.Context) (storage.Script, error) {
	name, err := c.prompter.Input(ctx, host.InputOptions{
		Prompt:      "Script name",
		Placeholder: "Script name",
	})
	if err != nil {
		return storage.Script{}, c.report(err)
	}

	s, err := c.store.Create(name)
	if err != nil {
		return storage.Script{}, c.report(err)
	}
	c.logger.Info("created %s", s.Path)

	if err := c.opener.Open(ctx, s.Path); err != nil {
		return s, c.report(err)
	}
	return s, nil
}

// Edit lets the user pick a script and opens it.
func (c *Commands) Edit(ctx context.Context) (storage.Script, error) {
	s, err := c.pick(ctx, "Edit script")
	if err != nil {
		return storage.Script{}, c.report(err)
	}
	if err := c.opener.Open(ctx, s.Path); err != nil {
		return s, c.report(err)
	}
	return s, nil
}

// Run lets the user pick a script and runs it.
func (c *Commands) Run(ctx context.Context) (*runner.Result, error) {
	s, err := c.pick(ctx, "Run script")
	if err != nil {
		return nil, c.report(err)
	}
	return c.run(ctx, s)
}

// RunNamed runs the script called name without showing the picker.
func (c *Commands) RunNamed(ctx context.Context, name string) (*runner.Result, error) {
	s, err := c.store.Lookup(name)
	if err != nil {
		return nil, c.report(err)
	}
	return c.run(ctx, s)
}

// List returns the stored scripts.
func (c *Commands) List() ([]storage.Script, error) {
	scripts, err := c.store.List()
	if err != nil {
		return nil, c.report(err)
	}
	return scripts, nil
}

func (c *Commands) run(ctx context.Context, s storage.Script) (*runner.Result, error) {
	res, err := c.runner.Run(ctx, s.Path)
	if err != nil {
		return nil, c.report(err)
	}
	c.notifier.Info(fmt.Sprintf("Script '%s' applied %d edit(s)", s.Name, len(res.Edits)))
	return res, nil
}

// describe is the picker description of s.
func describe(s storage.Script) string {
	return fmt.Sprintf("Execute '%s' on the selected text", s.Name)
}

func (c *Commands) pick(ctx context.Context, title string) (storage.Script, error) {
	scripts, err := c.store.List()
	if err != nil {
		return storage.Script{}, err
	}
	if len(scripts) == 0 {
		return storage.Script{}, fmt.Errorf("%w in %s", ErrNoScripts, c.store.Dir())
	}

	items := make([]host.Item, len(scripts))
	for i, s := range scripts {
		items[i] = host.Item{Label: s.Name, Description: describe(s), Value: s.Path}
	}
	item, err := c.prompter.Pick(ctx, title, items)
	if err != nil {
		return storage.Script{}, err
	}
	for _, s := range scripts {
		if s.Path == item.Value {
			return s, nil
		}
	}
	return storage.Script{}, host.ErrCancelled
}

// report shows err to the user unless it is a cancellation, and returns it.
func (c *Commands) report(err error) error {
	if host.IsCancelled(err) {
		c.logger.Debug("cancelled: %v", err)
		return err
	}
	c.logger.Error("%v", err)
	c.notifier.Error(err.Error())
	return err
}
