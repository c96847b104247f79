// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/pixivfe/i18nkeylint/analyzer"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <key>",
	Short: "Resolve a translation key against the dictionaries",
	Long: `Resolve a key the way a call t(key) would be resolved inside a scope declaring
--prefix and --namespace, and print the value found. Exits with status 1 when
the key is missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().String("prefix", "", "key prefix declared by the enclosing scope")
	lookupCmd.Flags().String("namespace", "", "namespace declared by the enclosing scope")
}

func runLookup(cmd *cobra.Command, args []string) error {
	prefix, _ := cmd.Flags().GetString("prefix")
	namespace, _ := cmd.Flags().GetString("namespace")

	store, err := analyzer.LoadStore(opts)
	if err != nil {
		return err
	}

	r := analyzer.NewChecker(opts, store).Resolver()
	res := r.Resolve(args[0], analyzer.Context{Prefix: prefix, Namespace: namespace})

	out := cmd.OutOrStdout()

	switch {
	case res.Skipped:
		fmt.Fprintf(out, "%s: skipped (namespaced keys are not checked)\n", res.Key)
	case res.Missing():
		fmt.Fprintln(out, r.Message(res))

		return errFindings
	default:
		fmt.Fprintln(out, res.Result.String())
	}

	return nil
}
