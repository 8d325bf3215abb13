// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package plugins

import (
	"encoding/xml"
	"os"
	"path/filepath"
)

// pluginXml is the subset of a plugin's descriptor needed for the
// compatibility gate.
type pluginXml struct {
	XMLName     xml.Name `xml:"idea-plugin"`
	Id          string   `xml:"id"`
	IdeaVersion struct {
		SinceBuild string `xml:"since-build,attr"`
		UntilBuild string `xml:"until-build,attr"`
	} `xml:"idea-version"`
}

// readPluginXml locates and parses the descriptor below an extracted plugin
// directory. A plugin without a readable descriptor declares no range and is
// treated as unbounded.
func readPluginXml(pluginDir string) (*pluginXml, bool) {
	candidates := []string{
		filepath.Join(pluginDir, "META-INF", "plugin.xml"),
		filepath.Join(pluginDir, "plugin.xml"),
	}
	if matches, err := filepath.Glob(filepath.Join(pluginDir, "*", "META-INF", "plugin.xml")); err == nil {
		candidates = append(candidates, matches...)
	}

	for _, c := range candidates {
		contents, err := os.ReadFile(c)
		if err != nil {
			continue
		}
		var parsed pluginXml
		if err := xml.Unmarshal(contents, &parsed); err != nil {
			continue
		}
		return &parsed, true
	}
	return nil, false
}
