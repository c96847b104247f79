// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/pixivfe/i18nkeylint/analyzer"
)

var errUnknownNamespace = errors.New("unknown namespace")

var keysCmd = &cobra.Command{
	Use:   "keys [namespace]",
	Short: "List the dotted key paths of the dictionaries",
	Long: `Print every dotted path ending at a translation, for one namespace or, without
an argument, for all of them as namespace:path. With --ignore-namespaces and no
argument the union of every namespace is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	store, err := analyzer.LoadStore(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		tree, ok := store.Tree(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", errUnknownNamespace, args[0])
		}

		for _, path := range tree.Leaves() {
			fmt.Fprintln(out, path)
		}

		return nil
	}

	if opts.IgnoreNamespaces {
		for _, path := range store.Merged().Leaves() {
			fmt.Fprintln(out, path)
		}

		return nil
	}

	for _, ns := range store.Namespaces() {
		tree, _ := store.Tree(ns)

		for _, path := range tree.Leaves() {
			fmt.Fprintf(out, "%s%s%s\n", ns, analyzer.NamespaceSeparator, path)
		}
	}

	return nil
}
