// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package analyzer

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"
)

// keyPrefixOption is the option field naming the scope prefix, matched
// case-insensitively.
const keyPrefixOption = "keyPrefix"

// Context is the resolution context of a call site. Empty fields mean the
// enclosing scopes declare nothing.
type Context struct {
	Prefix    string
	Namespace string
}

// HookDecl is a declaration whose value comes from the localisation hook, such
// as
//
//	t := useTranslation("home", Options{KeyPrefix: "hero"})
type HookDecl struct {
	Pos       token.Pos
	Namespace string
	Prefix    string
}

// ScopeChain holds the hook declarations visible at a call site, outermost
// first.
type ScopeChain []HookDecl

// Context returns the context declared by the last declaration of the chain.
func (c ScopeChain) Context() Context {
	if len(c) == 0 {
		return Context{}
	}

	last := c[len(c)-1]

	return Context{Prefix: last.Prefix, Namespace: last.Namespace}
}

// BuildScopeChain collects the hook declarations made before pos in the
// blocks enclosing it. stack is the ancestor chain of the node at pos, from
// the file down, as produced by [inspector.Inspector.WithStack].
func BuildScopeChain(info *types.Info, hookName string, stack []ast.Node, pos token.Pos) ScopeChain {
	var chain ScopeChain

	add := func(stmts []ast.Stmt) {
		for _, stmt := range stmts {
			if stmt == nil || stmt.End() > pos {
				continue
			}

			chain = append(chain, hookDecls(info, hookName, stmt)...)
		}
	}

	for _, n := range stack {
		switch node := n.(type) {
		case *ast.File:
			for _, decl := range node.Decls {
				if gd, ok := decl.(*ast.GenDecl); ok && gd.End() <= pos {
					chain = append(chain, genDeclHooks(info, hookName, gd)...)
				}
			}
		case *ast.BlockStmt:
			add(node.List)
		case *ast.CaseClause:
			add(node.Body)
		case *ast.CommClause:
			add(node.Body)
		case *ast.IfStmt:
			add([]ast.Stmt{node.Init})
		case *ast.ForStmt:
			add([]ast.Stmt{node.Init})
		case *ast.SwitchStmt:
			add([]ast.Stmt{node.Init})
		case *ast.TypeSwitchStmt:
			add([]ast.Stmt{node.Init})
		}
	}

	return chain
}

func hookDecls(info *types.Info, hookName string, stmt ast.Stmt) []HookDecl {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		if s.Tok != token.DEFINE && s.Tok != token.ASSIGN {
			return nil
		}

		var out []HookDecl

		for _, rhs := range s.Rhs {
			if d, ok := hookDecl(info, hookName, rhs); ok {
				out = append(out, d)
			}
		}

		return out
	case *ast.DeclStmt:
		if gd, ok := s.Decl.(*ast.GenDecl); ok {
			return genDeclHooks(info, hookName, gd)
		}
	}

	return nil
}

func genDeclHooks(info *types.Info, hookName string, gd *ast.GenDecl) []HookDecl {
	if gd.Tok != token.VAR {
		return nil
	}

	var out []HookDecl

	for _, spec := range gd.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		for _, v := range vs.Values {
			if d, ok := hookDecl(info, hookName, v); ok {
				out = append(out, d)
			}
		}
	}

	return out
}

// hookDecl reads the namespace and prefix from a hook call. Arguments of an
// unexpected shape are ignored.
func hookDecl(info *types.Info, hookName string, expr ast.Expr) (HookDecl, bool) {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok || !isHookCallee(call.Fun, hookName) {
		return HookDecl{}, false
	}

	d := HookDecl{Pos: call.Pos()}

	if len(call.Args) > 0 {
		d.Namespace = hookNamespace(info, call.Args[0])
	}

	if len(call.Args) > 1 {
		d.Prefix = hookPrefix(info, call.Args[1])
	}

	return d, true
}

func isHookCallee(fun ast.Expr, hookName string) bool {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f.Name == hookName
	case *ast.SelectorExpr:
		return f.Sel.Name == hookName
	case *ast.IndexExpr:
		return isHookCallee(f.X, hookName)
	}

	return false
}

// hookNamespace accepts a constant string or a slice literal whose first
// element is one.
func hookNamespace(info *types.Info, arg ast.Expr) string {
	if s, ok := constString(info, arg); ok {
		return s
	}

	lit, ok := ast.Unparen(arg).(*ast.CompositeLit)
	if !ok || len(lit.Elts) == 0 {
		return ""
	}

	s, _ := constString(info, lit.Elts[0])

	return s
}

// hookPrefix reads the key prefix field of an options literal, which may be
// a struct or a map and may be taken by address.
func hookPrefix(info *types.Info, arg ast.Expr) string {
	arg = ast.Unparen(arg)

	if u, ok := arg.(*ast.UnaryExpr); ok && u.Op == token.AND {
		arg = ast.Unparen(u.X)
	}

	lit, ok := arg.(*ast.CompositeLit)
	if !ok {
		return ""
	}

	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}

		var name string

		switch k := kv.Key.(type) {
		case *ast.Ident:
			name = k.Name
		default:
			name, _ = constString(info, k)
		}

		if !strings.EqualFold(name, keyPrefixOption) {
			continue
		}

		s, _ := constString(info, kv.Value)

		return s
	}

	return ""
}
