// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// BuildVersion is the latest tagged release of i18nkeylint.
const BuildVersion string = "v0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and VCS revision",
	Args:  cobra.NoArgs,
	// Printing the version needs no configuration.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, _ []string) {
		var b buildInfo

		b.load()
		fmt.Fprintf(cmd.OutOrStdout(), "i18nkeylint %s (%s)\n", BuildVersion, b.Revision())
	},
}

type buildInfo struct {
	VcsRevision string
	VcsTime     string
	VcsModified bool
}

func (b *buildInfo) Revision() string {
	if len(b.VcsRevision) < 8 {
		return "unknown"
	}

	s := strings.Split(b.VcsTime, "T")[0] + "-" + b.VcsRevision[:8]
	if b.VcsModified {
		s += "+dirty"
	}

	return s
}

func (b *buildInfo) load() {
	if info, ok := debug.ReadBuildInfo(); ok {
		b.VcsRevision = getBuildSetting(info.Settings, "vcs.revision")
		b.VcsTime = getBuildSetting(info.Settings, "vcs.time")
		b.VcsModified = getBuildSetting(info.Settings, "vcs.modified") == "true"
	}
}

func getBuildSetting(settings []debug.BuildSetting, key string) string {
	for _, kv := range settings {
		if key == kv.Key {
			return kv.Value
		}
	}

	return ""
}
