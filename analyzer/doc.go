// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package analyzer reports translation function calls whose key is not a
constant string or cannot be found in the configured dictionaries.

A call such as

	t := useTranslation("home", Options{KeyPrefix: "hero"})
	title := t("title")

resolves the key "hero.title" in the namespace "home". Keys may carry an
explicit namespace ("errors:notFound"), which overrides the one declared by
the enclosing hook. When the final path segment is missing, the plural
variants "title_zero", "title_singular", "title_one", "title_two",
"title_few", "title_many" and "title_other" are tried in that order.

[Analyzer] exposes the rule to go/analysis drivers. [Checker] holds the
shared traversal used by both the Analyzer and the i18nkeylint command.
*/
package analyzer
