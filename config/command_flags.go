// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/pflag"
)

var errUnknownOption = errors.New("unknown option")

type flagKind int

const (
	kindString flagKind = iota
	kindBool
	kindInt
	kindList
)

// optionFlag describes one option exposed as a command-line flag.
type optionFlag struct {
	name  string
	kind  flagKind
	usage string
	get   func(o *Options) string
}

// optionFlags lists every option that can be set from the command line. The
// flag name is the option name; CLI flags use its kebab-case form.
var optionFlags = []optionFlag{
	{"functionName", kindString, "identifier of the translation function", func(o *Options) string { return o.FunctionName }},
	{"hookName", kindString, "name of the function declaring a localisation scope", func(o *Options) string { return o.HookName }},
	{"referenceTranslationFiles", kindList, "comma-separated dictionary files merged into the default namespace", func(o *Options) string {
		return strings.Join(o.ReferenceTranslationFiles, ",")
	}},
	{"namespaceTranslationMappingFile", kindString, "file mapping namespace names to dictionary files", func(o *Options) string {
		return o.NamespaceTranslationMappingFile
	}},
	{"defaultNamespace", kindString, "namespace assumed for keys without a namespace prefix", func(o *Options) string { return o.DefaultNamespace }},
	{"skipNamespacedKeys", kindBool, "skip keys with an explicit namespace", func(o *Options) string { return strconv.FormatBool(o.SkipNamespacedKeys) }},
	{"ignoreNamespaces", kindBool, "strip namespaces and search every namespace", func(o *Options) string { return strconv.FormatBool(o.IgnoreNamespaces) }},
	{"allowNonLiteralKeys", kindBool, "do not report non-constant translation keys", func(o *Options) string { return strconv.FormatBool(o.AllowNonLiteralKeys) }},
	{"requireNamespaceMapping", kindBool, "require namespaceTranslationMappingFile", func(o *Options) string {
		return strconv.FormatBool(o.RequireNamespaceMapping)
	}},
	{"cache", kindBool, "cache dictionary file contents between loads", func(o *Options) string { return strconv.FormatBool(o.Cache) }},
	{"cacheSize", kindInt, "maximum number of cached dictionary files", func(o *Options) string { return strconv.Itoa(o.CacheSize) }},
}

// Set assigns the option called name from its string form. Lists are
// comma-separated.
func (o *Options) Set(name, value string) error {
	var err error

	switch name {
	case "functionName":
		o.FunctionName = value
	case "hookName":
		o.HookName = value
	case "referenceTranslationFiles":
		o.ReferenceTranslationFiles = splitList(value)
	case "namespaceTranslationMappingFile":
		o.NamespaceTranslationMappingFile = value
	case "defaultNamespace":
		o.DefaultNamespace = value
	case "skipNamespacedKeys":
		o.SkipNamespacedKeys, err = strconv.ParseBool(value)
	case "ignoreNamespaces":
		o.IgnoreNamespaces, err = strconv.ParseBool(value)
	case "allowNonLiteralKeys":
		o.AllowNonLiteralKeys, err = strconv.ParseBool(value)
	case "requireNamespaceMapping":
		o.RequireNamespaceMapping, err = strconv.ParseBool(value)
	case "cache":
		o.Cache, err = strconv.ParseBool(value)
	case "cacheSize":
		o.CacheSize, err = strconv.Atoi(value)
	default:
		return fmt.Errorf("%w: %s", errUnknownOption, name)
	}

	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, name, err)
	}

	return nil
}

// RegisterFlags defines one flag per option on fs, using the values of
// defaults. Only flags set on the command line are applied by [Options.ApplyFlags].
func RegisterFlags(fs *flag.FlagSet, defaults *Options) {
	for _, f := range optionFlags {
		def := f.get(defaults)

		switch f.kind {
		case kindBool:
			b, _ := strconv.ParseBool(def)
			fs.Bool(f.name, b, f.usage)
		case kindInt:
			n, _ := strconv.Atoi(def)
			fs.Int(f.name, n, f.usage)
		default:
			fs.String(f.name, def, f.usage)
		}
	}
}

// ApplyFlags copies the flags explicitly set on fs into o.
func (o *Options) ApplyFlags(fs *flag.FlagSet) error {
	var err error

	fs.Visit(func(fl *flag.Flag) {
		if err != nil || !isOptionFlag(fl.Name) {
			return
		}

		err = o.Set(fl.Name, fl.Value.String())
	})

	return err
}

// RegisterPFlags defines one kebab-case flag per option on fs.
func RegisterPFlags(fs *pflag.FlagSet, defaults *Options) {
	for _, f := range optionFlags {
		def := f.get(defaults)
		name := kebab(f.name)

		switch f.kind {
		case kindBool:
			b, _ := strconv.ParseBool(def)
			fs.Bool(name, b, f.usage)
		case kindInt:
			n, _ := strconv.Atoi(def)
			fs.Int(name, n, f.usage)
		default:
			fs.String(name, def, f.usage)
		}
	}
}

// ApplyPFlags copies the kebab-case flags explicitly set on fs into o.
func (o *Options) ApplyPFlags(fs *pflag.FlagSet) error {
	var err error

	fs.Visit(func(fl *pflag.Flag) {
		if err != nil {
			return
		}

		for _, f := range optionFlags {
			if kebab(f.name) == fl.Name {
				err = o.Set(f.name, fl.Value.String())

				return
			}
		}
	})

	return err
}

func isOptionFlag(name string) bool {
	for _, f := range optionFlags {
		if f.name == name {
			return true
		}
	}

	return false
}

// kebab turns "defaultNamespace" into "default-namespace".
func kebab(name string) string {
	var b strings.Builder

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
