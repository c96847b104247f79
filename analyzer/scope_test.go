// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package analyzer

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/ast/inspector"
)

func parseFile(t *testing.T, src string) *ast.File {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), "src.go", src, 0)
	require.NoError(t, err)

	return f
}

// contextAt returns the context of the call t(key) in src.
func contextAt(t *testing.T, src, key string) Context {
	t.Helper()

	f := parseFile(t, src)

	var (
		ctx   Context
		found bool
	)

	inspector.New([]*ast.File{f}).WithStack([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		call := n.(*ast.CallExpr)
		if !push || !isCallTo(call, "t") {
			return true
		}

		if k, ok := keyArg(nil, call); ok && k == key {
			ctx = BuildScopeChain(nil, "useTranslation", stack, call.Pos()).Context()
			found = true
		}

		return true
	})

	require.True(t, found, "call t(%q) not found", key)

	return ctx
}

const scopeSource = `package p

var global = useTranslation("global")

func f() {
	t("top")

	t := useTranslation("home", Options{KeyPrefix: "hero"})
	t("afterHook")

	{
		t := i18n.useTranslation([]string{"inner", "other"}, &Options{keyprefix: "deep.er"})
		t("inner")
	}

	t("afterBlock")

	tr := useTranslation("shadow", map[string]string{"keyPrefix": "mapped"})
	t("afterMap")

	if t := useTranslation(ns, Options{KeyPrefix: prefix}); ok {
		t("dynamic")
	}

	switch x := useTranslation(); x {
	case nil:
		t("switch")
	}

	go func() {
		t("closure")
	}()

	_ = tr
}
`

func TestBuildScopeChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want Context
	}{
		{key: "top", want: Context{Namespace: "global"}},
		{key: "afterHook", want: Context{Namespace: "home", Prefix: "hero"}},
		{key: "inner", want: Context{Namespace: "inner", Prefix: "deep.er"}},
		{key: "afterBlock", want: Context{Namespace: "home", Prefix: "hero"}},
		{key: "afterMap", want: Context{Namespace: "shadow", Prefix: "mapped"}},
		{key: "dynamic", want: Context{}},
		{key: "switch", want: Context{}},
		{key: "closure", want: Context{Namespace: "shadow", Prefix: "mapped"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, contextAt(t, scopeSource, tt.key))
		})
	}
}

func TestScopeChainOrder(t *testing.T) {
	t.Parallel()

	chain := ScopeChain{
		{Namespace: "outer", Prefix: "a"},
		{Namespace: "inner"},
	}

	assert.Equal(t, Context{Namespace: "inner"}, chain.Context())
	assert.Equal(t, Context{}, ScopeChain(nil).Context())
}

func TestHookDeclShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		expr   string
		want   HookDecl
		isHook bool
	}{
		{name: "no arguments", expr: `useTranslation()`, isHook: true},
		{name: "namespace only", expr: `useTranslation("ns")`, want: HookDecl{Namespace: "ns"}, isHook: true},
		{name: "empty slice", expr: `useTranslation([]string{})`, isHook: true},
		{name: "options without prefix", expr: `useTranslation("ns", Options{Lang: "en"})`, want: HookDecl{Namespace: "ns"}, isHook: true},
		{name: "options not a literal", expr: `useTranslation("ns", opts)`, want: HookDecl{Namespace: "ns"}, isHook: true},
		{name: "positional options", expr: `useTranslation("ns", Options{"x"})`, want: HookDecl{Namespace: "ns"}, isHook: true},
		{name: "generic hook", expr: `useTranslation[string]("ns")`, want: HookDecl{Namespace: "ns"}, isHook: true},
		{name: "other call", expr: `translate("ns")`},
		{name: "not a call", expr: `useTranslation`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expr, err := parser.ParseExpr(tt.expr)
			require.NoError(t, err)

			got, ok := hookDecl(nil, "useTranslation", expr)
			require.Equal(t, tt.isHook, ok)

			got.Pos = token.NoPos
			assert.Equal(t, tt.want, got)
		})
	}
}
