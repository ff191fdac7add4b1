// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes/models"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

const contentPreviewLen = 40

func (a *App) printNotes(notes []models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes")
		return
	}

	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"", "ID", "Title", "Content", "Updated"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)

	now := a.now()
	for _, n := range notes {
		pin := ""
		if n.IsPinned {
			pin = "*"
		}
		table.Append([]string{
			pin,
			n.ID,
			n.Title,
			preview(n.Content),
			humanize.RelTime(n.UpdatedAt, now, "ago", "from now"),
		})
	}
	table.Render()
}

func (a *App) printProfile(p models.UserProfile) {
	fmt.Fprintf(a.out, "ID:    %s\nName:  %s\nEmail: %s\n", p.ID, p.Name, p.Email)
}

func (a *App) printSession(s models.Session) {
	fmt.Fprintf(a.out, "%s <%s>\nid: %s\nlogged in %s\n",
		s.Name, s.Email, s.UserID, humanize.RelTime(s.SavedAt, a.now(), "ago", "from now"))
}

// preview flattens content to one line of at most contentPreviewLen runes.
func preview(content string) string {
	content = strings.Join(strings.Fields(content), " ")
	runes := []rune(content)
	if len(runes) <= contentPreviewLen {
		return content
	}
	return string(runes[:contentPreviewLen-3]) + "..."
}
