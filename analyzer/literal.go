// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package analyzer

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strconv"
)

// LiteralGuard reports translation calls whose first argument is not a
// constant string.
type LiteralGuard struct {
	// FunctionName is the identifier of the translation function.
	FunctionName string
	// AllowNonLiteralKeys disables the check.
	AllowNonLiteralKeys bool
}

// Check inspects call and returns a diagnostic when the call is a translation
// call with a non-constant key. info may be nil.
func (g LiteralGuard) Check(info *types.Info, call *ast.CallExpr) (Diagnostic, bool) {
	if g.AllowNonLiteralKeys || !isCallTo(call, g.FunctionName) {
		return Diagnostic{}, false
	}

	if _, ok := keyArg(info, call); ok {
		return Diagnostic{}, false
	}

	return Diagnostic{
		Pos:      call.Pos(),
		End:      call.End(),
		Category: CategoryNonLiteralKey,
		Message:  MsgNonLiteralKey,
	}, true
}

// calleeName returns the name of a call made through a bare identifier.
// Selector calls such as x.t() have no callee name.
func calleeName(call *ast.CallExpr) (string, bool) {
	id, ok := call.Fun.(*ast.Ident)
	if !ok {
		return "", false
	}

	return id.Name, true
}

func isCallTo(call *ast.CallExpr, name string) bool {
	n, ok := calleeName(call)

	return ok && n == name
}

// keyArg returns the constant key passed as the first argument of call.
func keyArg(info *types.Info, call *ast.CallExpr) (string, bool) {
	if len(call.Args) == 0 {
		return "", false
	}

	return constString(info, call.Args[0])
}

// constString evaluates expr to a constant string if possible using types.Info.
// Handles string literals, const identifiers, and constant expressions like "a" + "b".
// Without type information only string literals are recognised.
func constString(info *types.Info, expr ast.Expr) (string, bool) {
	if info != nil {
		if tv, ok := info.Types[expr]; ok {
			if tv.Value == nil || tv.Value.Kind() != constant.String {
				return "", false
			}

			return constant.StringVal(tv.Value), true
		}
	}

	lit, ok := ast.Unparen(expr).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}

	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}

	return s, true
}
