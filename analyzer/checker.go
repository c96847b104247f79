// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package analyzer

import (
	"go/ast"
	"go/types"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/tools/go/ast/inspector"

	"codeberg.org/pixivfe/i18nkeylint/config"
	"codeberg.org/pixivfe/i18nkeylint/dictionary"
)

// Checker runs the literal guard and the key resolver over call sites.
//
// A Checker holds no mutable state and may be shared between goroutines.
type Checker struct {
	guard        LiteralGuard
	resolver     *Resolver
	functionName string
	hookName     string
	logger       zerolog.Logger
}

// NewChecker returns a Checker for opts. When store is nil only the literal
// guard runs.
func NewChecker(opts *config.Options, store *dictionary.Store) *Checker {
	c := &Checker{
		guard: LiteralGuard{
			FunctionName:        opts.FunctionName,
			AllowNonLiteralKeys: opts.AllowNonLiteralKeys,
		},
		functionName: opts.FunctionName,
		hookName:     opts.HookName,
		logger:       log.With().Str("sys", "analyzer").Logger(),
	}

	if store != nil {
		c.resolver = NewResolver(opts, store)
	}

	return c
}

// Resolver returns the key resolver, or nil when the Checker has no store.
func (c *Checker) Resolver() *Resolver {
	return c.resolver
}

// CheckCall checks one call expression. stack is the ancestor chain of call
// ending with call itself; info may be nil.
func (c *Checker) CheckCall(info *types.Info, call *ast.CallExpr, stack []ast.Node) []Diagnostic {
	if !isCallTo(call, c.functionName) {
		return nil
	}

	if d, ok := c.guard.Check(info, call); ok {
		return []Diagnostic{d}
	}

	if c.resolver == nil {
		return nil
	}

	key, ok := keyArg(info, call)
	if !ok {
		return nil
	}

	ctx := BuildScopeChain(info, c.hookName, stack, call.Pos()).Context()
	res := c.resolver.Resolve(key, ctx)

	c.logger.Trace().
		Str("key", res.Key).
		Str("namespace", res.Namespace).
		Bool("skipped", res.Skipped).
		Bool("present", res.Result.IsPresent()).
		Msg("Resolved translation key")

	if !res.Missing() {
		return nil
	}

	return []Diagnostic{{
		Pos:      call.Pos(),
		End:      call.End(),
		Category: CategoryUndefinedKey,
		Message:  c.resolver.Message(res),
	}}
}

// Run checks every call expression reachable from ins, in document order.
func (c *Checker) Run(ins *inspector.Inspector, info *types.Info, report func(Diagnostic)) {
	filter := []ast.Node{(*ast.CallExpr)(nil)}

	ins.WithStack(filter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		for _, d := range c.CheckCall(info, n.(*ast.CallExpr), stack) {
			report(d)
		}

		return true
	})
}

// CheckFiles checks files outside of an analysis pass.
func (c *Checker) CheckFiles(info *types.Info, files []*ast.File, report func(Diagnostic)) {
	c.Run(inspector.New(files), info, report)
}
