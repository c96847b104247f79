// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"codeberg.org/pixivfe/i18nkeylint/analyzer"
)

var (
	errPackageLoad   = errors.New("failed to load packages due to errors")
	errInvalidFormat = errors.New("invalid --format value")
)

var checkCmd = &cobra.Command{
	Use:   "check [packages]",
	Short: "Check the translation keys used by Go packages",
	Long: `Load the given packages (default ./...) with type information and report
translation calls with non-constant keys or keys missing from the dictionaries.
Exits with status 1 when anything is reported.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max packages checked in parallel (0=GOMAXPROCS)")
	checkCmd.Flags().String("format", "text", "output format (text|json)")
	checkCmd.Flags().Bool("tests", false, "also check test files")
}

// finding is a diagnostic with its resolved position.
type finding struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	format, _ := cmd.Flags().GetString("format")
	tests, _ := cmd.Flags().GetBool("tests")

	if format != "text" && format != "json" {
		return fmt.Errorf("%w: %q", errInvalidFormat, format)
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	store, err := analyzer.LoadStore(opts)
	if err != nil {
		return err
	}

	pkgs, err := packages.Load(&packages.Config{
		Context: cmd.Context(),
		Mode:    packages.LoadAllSyntax,
		Tests:   tests,
	}, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	if packages.PrintErrors(pkgs) > 0 {
		return errPackageLoad
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	findings, err := checkPackages(cmd.Context(), analyzer.NewChecker(opts, store), pkgs, jobs, wd)
	if err != nil {
		return err
	}

	log.Info().
		Int("packages", len(pkgs)).
		Int("findings", len(findings)).
		Msg("Check finished")

	if format == "json" {
		err = writeJSON(cmd.OutOrStdout(), findings)
	} else {
		writeText(cmd.OutOrStdout(), findings)
	}

	if err != nil {
		return err
	}

	if len(findings) > 0 {
		return errFindings
	}

	return nil
}

// checkPackages checks pkgs concurrently, at most jobs at a time, and returns
// the findings sorted by position with duplicates removed. Paths are made
// relative to root when possible.
func checkPackages(ctx context.Context, checker *analyzer.Checker, pkgs []*packages.Package, jobs int, root string) ([]finding, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	results := make([][]finding, len(pkgs))

	for i, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var out []finding

			checker.CheckFiles(p.TypesInfo, p.Syntax, func(d analyzer.Diagnostic) {
				pos := p.Fset.Position(d.Pos)

				file := pos.Filename
				if rel, err := filepath.Rel(root, file); err == nil {
					file = rel
				}

				out = append(out, finding{
					File:     filepath.ToSlash(file),
					Line:     pos.Line,
					Column:   pos.Column,
					Category: d.Category,
					Message:  d.Message,
				})
			})

			results[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []finding
	for _, r := range results {
		all = append(all, r...)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].File != all[j].File {
			return all[i].File < all[j].File
		}

		if all[i].Line != all[j].Line {
			return all[i].Line < all[j].Line
		}

		if all[i].Column != all[j].Column {
			return all[i].Column < all[j].Column
		}

		return all[i].Message < all[j].Message
	})

	// Test variants of a package repeat its files; duplicates are adjacent
	// after sorting.
	deduped := all[:0]
	for _, f := range all {
		if n := len(deduped); n > 0 && f == deduped[n-1] {
			continue
		}

		deduped = append(deduped, f)
	}

	return deduped, nil
}

func writeText(w io.Writer, findings []finding) {
	location := color.New(color.Bold)
	undefined := color.New(color.FgRed)
	nonLiteral := color.New(color.FgYellow)

	for _, f := range findings {
		msg := undefined
		if f.Category == analyzer.CategoryNonLiteralKey {
			msg = nonLiteral
		}

		fmt.Fprintf(w, "%s: %s\n",
			location.Sprintf("%s:%d:%d", f.File, f.Line, f.Column),
			msg.Sprint(f.Message))
	}
}

func writeJSON(w io.Writer, findings []finding) error {
	if findings == nil {
		findings = []finding{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(findings); err != nil {
		return fmt.Errorf("failed to encode findings: %w", err)
	}

	return nil
}
