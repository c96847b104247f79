// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package analyzer

import (
	"go/ast"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/pixivfe/i18nkeylint/config"
	"codeberg.org/pixivfe/i18nkeylint/dictionary"
)

const checkerSource = `package p

func f(pizza string) {
	t("pizza")
	t("records.contracts")
	t(pizza)
	t()
	t("thisOneIsMissing")
	x.t("thisOneIsMissing")
	translate("thisOneIsMissing")
}
`

func pizzaStore() *dictionary.Store {
	return dictionary.NewStore(map[string]dictionary.Tree{
		config.DefaultNamespace: {
			"pizza":   "Pizza",
			"records": map[string]any{"contracts": "Contracts"},
		},
	})
}

func collect(c *Checker, f *ast.File) []Diagnostic {
	var got []Diagnostic

	c.CheckFiles(nil, []*ast.File{f}, func(d Diagnostic) {
		got = append(got, d)
	})

	return got
}

func messages(ds []Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Message
	}

	return out
}

func TestCheckerEndToEnd(t *testing.T) {
	t.Parallel()

	f := parseFile(t, checkerSource)
	got := collect(NewChecker(config.Default(), pizzaStore()), f)

	assert.Equal(t, []string{
		MsgNonLiteralKey,
		MsgNonLiteralKey,
		"Translation key thisOneIsMissing is used here but missing in the translations files.",
	}, messages(got))

	assert.Equal(t, CategoryNonLiteralKey, got[0].Category)
	assert.Equal(t, CategoryUndefinedKey, got[2].Category)

	for _, d := range got {
		assert.True(t, d.Pos < d.End)
	}
}

func TestCheckerAllowNonLiteralKeys(t *testing.T) {
	t.Parallel()

	o := config.Default()
	o.AllowNonLiteralKeys = true

	c := NewChecker(o, pizzaStore())
	got := collect(c, parseFile(t, checkerSource))

	assert.Equal(t, []string{
		"Translation key thisOneIsMissing is used here but missing in the translations files.",
	}, messages(got))

	require.NotNil(t, c.Resolver())
	assert.True(t, c.Resolver().Resolve("pizza", Context{}).Result.IsPresent())
}

func TestCheckerGuardOnly(t *testing.T) {
	t.Parallel()

	c := NewChecker(config.Default(), nil)
	assert.Nil(t, c.Resolver())

	got := collect(c, parseFile(t, checkerSource))
	assert.Equal(t, []string{MsgNonLiteralKey, MsgNonLiteralKey}, messages(got))
}

func TestCheckerFunctionName(t *testing.T) {
	t.Parallel()

	o := config.Default()
	o.FunctionName = "translate"

	got := collect(NewChecker(o, pizzaStore()), parseFile(t, checkerSource))
	assert.Equal(t, []string{
		"Translation key thisOneIsMissing is used here but missing in the translations files.",
	}, messages(got))
}

func TestLoadStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	en := write("en.json", `{"pizza": "Pizza"}`)
	de := write("de.yaml", "records:\n  contracts: Verträge\n")
	errs := write("errors.toml", "notFound = \"Not found\"\n")
	mapping := write("namespaces.json", `{"errors": "`+errs+`"}`)

	t.Run("reference files", func(t *testing.T) {
		t.Parallel()

		o := config.Default()
		o.ReferenceTranslationFiles = []string{en, de}

		store, err := LoadStore(o)
		require.NoError(t, err)
		assert.Equal(t, []string{config.DefaultNamespace}, store.Namespaces())
		assert.True(t, store.Lookup(config.DefaultNamespace, "records.contracts").IsPresent())
	})

	t.Run("namespace mapping with cache", func(t *testing.T) {
		t.Parallel()

		o := config.Default()
		o.NamespaceTranslationMappingFile = mapping
		o.Cache = true

		for range 2 {
			store, err := LoadStore(o)
			require.NoError(t, err)
			assert.True(t, store.Lookup("errors", "notFound").IsPresent())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		o := config.Default()
		o.ReferenceTranslationFiles = []string{filepath.Join(dir, "missing.json")}

		_, err := LoadStore(o)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
