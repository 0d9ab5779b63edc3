package shellcmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"

	"github.com/macropower/nixshellgen/pkg/flakeedit"
	"github.com/macropower/nixshellgen/pkg/flakeref"
)

// AddOptions are the arguments to [Project.Add].
type AddOptions struct {
	ShellHook string
	Packages  []string
	// Inputs are flake URLs.
	Inputs []string
}

// InputResult is the outcome of adding one flake input.
type InputResult struct {
	Err error
	// Source is the URL as given.
	Source  string
	Input   flakeref.Input
	Outcome flakeedit.Outcome
}

// Remediation returns the line to add to flake.nix by hand when the input
// could not be added automatically. It is empty when there is nothing to do.
func (r InputResult) Remediation() string {
	if r.Err == nil || r.Input.Key == "" {
		return ""
	}

	return r.Input.Remediation()
}

func (r InputResult) displayName() string {
	if r.Input.Key != "" {
		return r.Input.Key
	}

	return r.Source
}

// AddResult reports what [Project.Add] did.
type AddResult struct {
	Inputs        []InputResult
	PackagesAdded int
	HookAppended  bool
}

// Failed returns the inputs that could not be added.
func (r *AddResult) Failed() []InputResult {
	failed := []InputResult{}

	for _, in := range r.Inputs {
		if in.Err != nil {
			failed = append(failed, in)
		}
	}

	return failed
}

// Err combines the per-input failures, or returns nil if there were none.
func (r *AddResult) Err() error {
	var merr *multierror.Error

	for _, in := range r.Failed() {
		merr = multierror.Append(merr, fmt.Errorf("input %q: %w", in.displayName(), in.Err))
	}

	return merr.ErrorOrNil()
}

// Add adds inputs to flake.nix, and packages and a shell hook to
// devshell.toml. Inputs are handled one at a time; a failure to edit one
// input is recorded in the result and the rest are still attempted. Failing
// to read or write a file stops the command.
func (p *Project) Add(opts *AddOptions) (*AddResult, error) {
	res, err := p.add(opts)
	p.broadcastEvent(EventDone{Err: err})

	return res, err
}

func (p *Project) add(opts *AddOptions) (*AddResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	logger := slog.With(
		slog.String("cmd", "add"),
		slog.String("path", p.BasePath),
	)

	cfg, err := p.Config()
	if err != nil {
		return nil, err
	}

	res := &AddResult{Inputs: []InputResult{}}

	p.broadcastEvent(EventSetInputTotal(len(opts.Inputs)))

	editor := flakeedit.NewEditor(p.fs, p.FlakePath())

	for _, src := range opts.Inputs {
		ir, err := p.addInput(editor, src)
		res.Inputs = append(res.Inputs, ir)

		p.broadcastEvent(EventAddedInput{
			Key:         ir.displayName(),
			Outcome:     ir.Outcome,
			Err:         ir.Err,
			Remediation: ir.Remediation(),
		})

		if err != nil {
			return res, err
		}

		if ir.Err != nil {
			logger.Warn("could not add input",
				slog.String("input", src),
				slog.String("remediation", ir.Remediation()),
				slog.Any("err", ir.Err),
			)

			continue
		}

		cfg.AddPackages(ir.Input.PackageRef())
	}

	res.PackagesAdded = cfg.AddPackages(opts.Packages...)
	res.HookAppended = cfg.AppendHook(opts.ShellHook)

	logger.Debug("saving config",
		slog.Int("packages_added", res.PackagesAdded),
		slog.Bool("hook_appended", res.HookAppended),
	)

	if err := p.saveConfig(cfg); err != nil {
		return res, err
	}

	return res, nil
}

// addInput edits the flake for a single input. The returned error is set
// only for failures that must stop the whole command.
func (p *Project) addInput(editor *flakeedit.Editor, src string) (InputResult, error) {
	ir := InputResult{Source: src}

	in, err := flakeref.Parse(src)
	if err != nil {
		ir.Err = fmt.Errorf("%w: %w", ErrInvalidInput, err)

		return ir, nil
	}

	ir.Input = in

	p.broadcastEvent(EventAddingInput(in.Key))

	ir.Outcome, ir.Err = editor.AddInput(in.Key, in.URL)
	if errors.Is(ir.Err, flakeedit.ErrIO) {
		return ir, fmt.Errorf("%w: %w", ErrFlakeFailed, ir.Err)
	}

	return ir, nil
}
