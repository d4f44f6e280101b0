package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mediasort/internal/archive"
	"mediasort/internal/media"
	"mediasort/internal/organize"
	"mediasort/internal/preflight"
)

var titleCaser = cases.Title(language.English)

func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printOutcome streams one entry's result as the walk progresses. Skips and
// failures go to the structured log instead; stdout carries the plan.
func printOutcome(w io.Writer, o organize.Outcome) {
	switch o.Status {
	case organize.StatusMoved:
		fmt.Fprintf(w, "%s -> %s\n", o.Source, o.Destination)
	case organize.StatusPlanned:
		fmt.Fprintf(w, "would move %s -> %s\n", o.Source, o.Destination)
	}
}

func renderSummary(report *organize.Report, tty bool) string {
	moved := report.Count(organize.StatusMoved)
	planned := report.Count(organize.StatusPlanned)
	skipped := report.Count(organize.StatusSkipped)
	failed := report.Count(organize.StatusFailed)

	rows := [][]string{}
	if report.DryRun {
		rows = append(rows, []string{"Planned", strconv.Itoa(planned)})
	} else {
		rows = append(rows, []string{"Moved", strconv.Itoa(moved)})
	}
	rows = append(rows,
		[]string{"Skipped", strconv.Itoa(skipped)},
		[]string{"Failed", strconv.Itoa(failed)},
	)
	for _, line := range categoryRows(report) {
		rows = append(rows, line)
	}

	if tty {
		return renderTable([]string{"Result", "Count"}, rows, []columnAlignment{alignLeft, alignRight}) + "\n"
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s: %s\n", strings.ToLower(row[0]), row[1])
	}
	return b.String()
}

// categoryRows breaks organized entries down by archive category, e.g.
// "Pictures" / "Videos".
func categoryRows(report *organize.Report) [][]string {
	counts := report.CategoryCounts()
	categories := make([]media.Category, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	rows := make([][]string, 0, len(categories))
	for _, category := range categories {
		label := titleCaser.String(archive.CategoryDir(category))
		rows = append(rows, []string{label, strconv.Itoa(counts[category])})
	}
	return rows
}

func renderPreflight(results []preflight.Result, tty bool) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := "FAIL"
		if r.Passed {
			status = "OK"
		}
		rows = append(rows, []string{r.Name, status, r.Detail})
	}

	if tty {
		return renderTable([]string{"Check", "Status", "Detail"}, rows, nil) + "\n"
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s: %s (%s)\n", row[0], row[1], row[2])
	}
	return b.String()
}
