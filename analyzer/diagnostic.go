// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package analyzer

import (
	"fmt"
	"go/token"
)

// Diagnostic categories.
const (
	CategoryNonLiteralKey = "non-literal-key"
	CategoryUndefinedKey  = "undefined-key"
)

// MsgNonLiteralKey is reported for translation calls without a constant key.
const MsgNonLiteralKey = "Translation keys must be string literals"

// Diagnostic is a finding at a call site. Diagnostics are handed to the
// caller's report function and never retained.
type Diagnostic struct {
	Pos      token.Pos
	End      token.Pos
	Category string
	Message  string
}

func missingInNamespace(path, namespace string) string {
	return fmt.Sprintf(`Translation key "%s" in namespace "%s" is used here but missing in the translations file.`, path, namespace)
}

func missingKey(key string) string {
	return fmt.Sprintf("Translation key %s is used here but missing in the translations files.", key)
}
