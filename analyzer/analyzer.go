// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package analyzer

import (
	"flag"
	"fmt"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"codeberg.org/pixivfe/i18nkeylint/config"
)

const doc = `report translation keys that are not constant or missing from the dictionaries

The i18nkeys analyzer finds calls to the translation function (default t)
and reports a call whose first argument is not a constant string, or whose
key, after applying the prefix and namespace declared by an enclosing
localisation hook (default useTranslation), cannot be found in the
reference dictionaries or the namespace mapping.

Options are read from the -config file, .env, I18NKEYLINT_* environment
variables and flags, in increasing order of precedence.`

// Analyzer reports non-constant and undefined translation keys.
var Analyzer = NewAnalyzer()

// LiteralAnalyzer only reports non-constant translation keys. It reads no
// dictionaries.
var LiteralAnalyzer = NewLiteralAnalyzer()

type runner struct {
	configPath string
	flags      *flag.FlagSet
	literal    bool
}

// NewAnalyzer returns an analyzer with its own flag set.
func NewAnalyzer() *analysis.Analyzer {
	r := &runner{}

	a := &analysis.Analyzer{
		Name:     "i18nkeys",
		Doc:      doc,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      r.run,
	}

	r.flags = &a.Flags
	a.Flags.StringVar(&r.configPath, "config", "", "path to the YAML configuration file")
	config.RegisterFlags(&a.Flags, config.Default())

	return a
}

// NewLiteralAnalyzer returns a literal-only analyzer with its own flag set.
func NewLiteralAnalyzer() *analysis.Analyzer {
	r := &runner{literal: true}

	a := &analysis.Analyzer{
		Name:     "i18nliteralkeys",
		Doc:      "report translation calls whose key is not a constant string",
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      r.run,
	}

	r.flags = &a.Flags
	a.Flags.StringVar(&r.configPath, "config", "", "path to the YAML configuration file")
	config.RegisterFlags(&a.Flags, config.Default())

	return a
}

func (r *runner) options() (*config.Options, error) {
	opts, err := config.Load(r.configPath)
	if err != nil {
		return nil, err
	}

	if err := opts.ApplyFlags(r.flags); err != nil {
		return nil, fmt.Errorf("error applying flags: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return opts, nil
}

func (r *runner) run(pass *analysis.Pass) (any, error) {
	opts, err := r.options()
	if err != nil {
		return nil, err
	}

	checker := NewChecker(opts, nil)

	if !r.literal {
		store, err := LoadStore(opts)
		if err != nil {
			return nil, err
		}

		checker = NewChecker(opts, store)
	}

	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	checker.Run(ins, pass.TypesInfo, func(d Diagnostic) {
		pass.Report(analysis.Diagnostic{
			Pos:      d.Pos,
			End:      d.End,
			Category: d.Category,
			Message:  d.Message,
		})
	})

	return nil, nil
}
