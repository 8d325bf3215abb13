// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
)

// Table renders the resolution for the terminal.
func (r *Resolution) Table() string {
	var rows [][]string

	if r.Ide != nil {
		rows = append(rows, []string{"ide", r.Ide.BuildNumber, styleOk().Render(r.Ide.InstallDir)})
	}
	if r.Runtime != nil {
		rows = append(rows, []string{"runtime", r.Runtime.Token, styleOk().Render(r.Runtime.Executable)})
	}
	rows = append(rows, lo.Map(r.Plugins, func(p *DepResult, _ int) []string {
		label := p.Id
		if p.Version != "" {
			label += ":" + p.Version
		}
		return []string{"plugin (" + p.Kind + ")", label, styleOk().Render(p.Path)}
	})...)
	rows = append(rows, lo.Map(r.Errors, func(f *Failure, _ int) []string {
		return []string{"error", f.Code, styleErr().Render(f.Cause)}
	})...)

	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Rows(rows...).
		String()
}

func styleOk() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
}

func styleErr() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
}
