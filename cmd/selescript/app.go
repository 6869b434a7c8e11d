package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kdouveno/selescript/internal/commands"
	"github.com/kdouveno/selescript/internal/config"
	"github.com/kdouveno/selescript/internal/logging"
	"github.com/kdouveno/selescript/internal/report"
	"github.com/kdouveno/selescript/internal/runner"
	"github.com/kdouveno/selescript/internal/script"
	"github.com/kdouveno/selescript/internal/storage"
	"github.com/kdouveno/selescript/internal/terminal"
)

var errUsage = errors.New("usage")

// app wires the terminal host to the commands.
type app struct {
	cfg     config.Config
	opts    Options
	logger  *logging.Logger
	colored bool

	store    *storage.Store
	registry *script.Registry
	lines    terminal.LineReader
	prompter *terminal.Prompter
	notifier *terminal.Notifier
	opener   *terminal.Opener
	stdout   io.Writer
}

func newApp(cfg config.Config, opts Options, logger *logging.Logger, colored bool) (*app, error) {
	lines := terminal.NewReadline(os.Stdin, os.Stderr)
	a := &app{
		cfg:      cfg,
		opts:     opts,
		logger:   logger,
		colored:  colored,
		store:    storage.New(cfg.ScriptsDir, storage.WithExtension(cfg.Extension)),
		registry: script.NewRegistry(logger),
		lines:    lines,
		prompter: terminal.NewPrompter(lines, os.Stderr, colored),
		notifier: terminal.NewNotifier(os.Stderr, colored),
		opener:   terminal.NewOpener(cfg.Editor, os.Stdin, os.Stdout, os.Stderr),
		stdout:   os.Stdout,
	}
	a.opener.Suspend = lines
	return a, nil
}

// Close releases the prompt.
func (a *app) Close() {
	a.lines.Close()
}

// Execute runs the command named in the options.
func (a *app) Execute(ctx context.Context) error {
	switch a.opts.Command {
	case "create":
		_, err := a.commands(nil).Create(ctx)
		return err
	case "edit":
		_, err := a.commands(nil).Edit(ctx)
		return err
	case "list":
		return a.list()
	case "run":
		return a.run(ctx)
	case "watch":
		return a.watch(ctx)
	case "config":
		return a.printConfig()
	default:
		return errUsage
	}
}

func (a *app) commands(r *runner.Runner) *commands.Commands {
	return commands.New(commands.Config{
		Store:    a.store,
		Runner:   r,
		Prompter: a.prompter,
		Notifier: a.notifier,
		Opener:   a.opener,
		Logger:   a.logger,
	})
}

func (a *app) list() error {
	scripts, err := a.commands(nil).List()
	if err != nil {
		return err
	}
	for _, s := range scripts {
		fmt.Fprintf(a.stdout, "%s\t%s\n", s.Name, s.Path)
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	var source terminal.Source
	switch {
	case a.opts.Clipboard:
		source = terminal.ClipboardSource{}
	case a.opts.File != "":
		source = terminal.FileSource{Path: a.opts.File}
	default:
		return errUsage
	}

	editor, err := terminal.Open(source, a.opts.Selections)
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}

	r := runner.New(editor, a.prompter,
		runner.WithLogger(a.logger),
		runner.WithRegistry(a.registry),
	)
	cmds := a.commands(r)

	var res *runner.Result
	if a.opts.Script != "" {
		res, err = cmds.RunNamed(ctx, a.opts.Script)
	} else {
		res, err = cmds.Run(ctx)
	}
	if err != nil {
		return err
	}

	if a.opts.Diff {
		if err := terminal.WriteDiff(a.stdout, editor.Original(), editor.Text(), a.colored); err != nil {
			return err
		}
	}
	if a.opts.JSON {
		text := ""
		if a.opts.DryRun {
			text = editor.Text()
		}
		out, err := report.JSON(res, text)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, out)
	} else if a.opts.DryRun && !a.opts.Diff {
		fmt.Fprint(a.stdout, editor.Text())
	}

	if a.opts.DryRun {
		return nil
	}
	if err := editor.Save(); err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	for _, s := range editor.Selections() {
		a.logger.Debug("selection %s", terminal.FormatSelection(s))
	}
	return nil
}

// watch previews a script on a file and previews it again each time the
// script is saved. The file is never written.
func (a *app) watch(ctx context.Context) error {
	if a.opts.Script == "" || a.opts.File == "" {
		return errUsage
	}
	s, err := a.store.Lookup(a.opts.Script)
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}

	changes := make(chan string, 16)
	w, err := script.NewWatcher(a.registry, a.store.Dir(),
		script.WithExtension(a.store.Ext()),
		script.WithLogger(a.logger),
		script.WithOnChange(func(path string) {
			select {
			case changes <- path:
			default:
			}
		}),
	)
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	defer w.Close()

	a.notifier.Info(fmt.Sprintf("Watching '%s', press Ctrl-C to stop", s.Name))
	return watchLoop(ctx, s.Path, changes, settleDelay, a.logger, func(ctx context.Context) error {
		editor, err := terminal.Open(terminal.FileSource{Path: a.opts.File}, a.opts.Selections)
		if err != nil {
			a.notifier.Error(err.Error())
			return err
		}
		r := runner.New(editor, a.prompter,
			runner.WithLogger(a.logger),
			runner.WithRegistry(a.registry),
		)
		if _, err := a.commands(r).RunNamed(ctx, s.Name); err != nil {
			return err
		}
		return terminal.WriteDiff(a.stdout, editor.Original(), editor.Text(), a.colored)
	})
}

func (a *app) printConfig() error {
	data, err := config.Encode(a.cfg)
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(data)
	return err
}
