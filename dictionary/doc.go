// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package dictionary loads reference translation dictionaries and resolves
dotted translation keys against them.

A [Store] maps namespace names to nested [Tree] values. Stores are built once
per analysis run, either from a list of reference files merged into a single
namespace ([Loader.LoadReferenceFiles]) or from a namespace mapping file that
names one dictionary file per namespace ([Loader.LoadNamespaceMapping]).
A Store is never modified after it is built and is safe for concurrent reads.

# File formats

The decoder is chosen by file extension:

	.json .yaml .yml   nested mappings (YAML is a superset of JSON)
	.toml              nested tables
	.po                gettext catalogues; each msgid is stored at its dotted path

Files with any other extension are decoded as YAML.

# Lookups

[Tree.Lookup] walks a dotted path one segment at a time. The walk yields
[Absent] as soon as a segment is missing or the current value is not a
container. When the final segment misses, the suffixes in [PluralSuffixes]
are tried in order against the same parent, so "item" also matches
"item_one" or "item_other".
*/
package dictionary
