package terminal

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/kdouveno/selescript/internal/host"
)

// LineReader reads one line of user input.
type LineReader interface {
	ReadLine(prompt, def string) (string, error)
	Close() error
}

// readlineReader reads lines with chzyer/readline. The instance is created
// on first use and released by Close, so an external program can own the
// terminal in between.
type readlineReader struct {
	in  io.Reader
	out io.Writer
	rl  *readline.Instance
}

// NewReadline creates a LineReader on in and out.
func NewReadline(in io.Reader, out io.Writer) LineReader {
	return &readlineReader{in: in, out: out}
}

func (r *readlineReader) ReadLine(prompt, def string) (string, error) {
	if r.rl == nil {
		rl, err := readline.NewEx(&readline.Config{
			Stdin:           readline.NewCancelableStdin(r.in),
			Stdout:          r.out,
			Stderr:          r.out,
			InterruptPrompt: "^C",
			EOFPrompt:       "\n",
		})
		if err != nil {
			return "", err
		}
		r.rl = rl
	}

	r.rl.SetPrompt(prompt)
	line, err := r.rl.ReadlineWithDefault(def)
	if err == readline.ErrInterrupt || err == io.EOF {
		return "", host.ErrCancelled
	}
	// readline sometimes reports EOF as a plain error string.
	if err != nil && err.Error() == "EOF" {
		return "", host.ErrCancelled
	}
	return line, err
}

func (r *readlineReader) Close() error {
	if r.rl == nil {
		return nil
	}
	err := r.rl.Close()
	r.rl = nil
	return err
}

// Prompter implements host.Prompter on a terminal.
type Prompter struct {
	lines LineReader
	out   io.Writer

	label *color.Color
	dim   *color.Color
}

// NewPrompter creates a Prompter reading from lines and listing choices on
// out.
func NewPrompter(lines LineReader, out io.Writer, colored bool) *Prompter {
	p := &Prompter{
		lines: lines,
		out:   out,
		label: color.New(color.FgCyan, color.Bold),
		dim:   color.New(color.Faint),
	}
	if !colored {
		p.label.DisableColor()
		p.dim.DisableColor()
	}
	return p
}

// Input implements host.Prompter.
func (p *Prompter) Input(ctx context.Context, opts host.InputOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	prompt := opts.Prompt
	if opts.Placeholder != "" && opts.Placeholder != opts.Prompt {
		prompt += " " + p.dim.Sprintf("(%s)", opts.Placeholder)
	}
	line, err := p.lines.ReadLine(p.label.Sprint(prompt)+": ", opts.Default)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return line, nil
}

// Pick implements host.Prompter. The user types the number of an item or
// a fuzzy query; a query matching several items narrows the list. An empty
// answer cancels.
func (p *Prompter) Pick(ctx context.Context, title string, items []host.Item) (host.Item, error) {
	if len(items) == 0 {
		return host.Item{}, host.ErrCancelled
	}

	shown := items
	for {
		if err := ctx.Err(); err != nil {
			return host.Item{}, err
		}

		p.label.Fprintln(p.out, title)
		for i, it := range shown {
			fmt.Fprintf(p.out, "  %2d  %s", i+1, it.Label)
			if it.Description != "" {
				fmt.Fprintf(p.out, "  %s", p.dim.Sprint(it.Description))
			}
			fmt.Fprintln(p.out)
		}

		line, err := p.lines.ReadLine("> ", "")
		if err != nil {
			return host.Item{}, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return host.Item{}, host.ErrCancelled
		}

		if n, err := strconv.Atoi(line); err == nil {
			if n >= 1 && n <= len(shown) {
				return shown[n-1], nil
			}
			fmt.Fprintf(p.out, "no item %d\n", n)
			continue
		}

		matches := FilterItems(line, shown)
		switch {
		case len(matches) == 0:
			fmt.Fprintf(p.out, "no script matches %q\n", line)
		case len(matches) == 1 || strings.EqualFold(matches[0].Label, line):
			return matches[0], nil
		default:
			shown = matches
		}
	}
}

// FilterItems returns the items whose label fuzzy-matches query, best
// match first.
func FilterItems(query string, items []host.Item) []host.Item {
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}

	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	sort.Stable(ranks)

	out := make([]host.Item, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, items[r.OriginalIndex])
	}
	return out
}
