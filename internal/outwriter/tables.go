package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/defactosf/nbafetch/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// winLossColumn gets colored cells in table output.
const winLossColumn = "WL"

// PrintRecordTable renders selected columns of a record set as a
// human-readable table. Columns missing from the record set are skipped;
// limit <= 0 prints every row.
func PrintRecordTable(w io.Writer, rs *schema.RecordSet, columns []string, limit int, cfg *contract.Config) error {
	var headers []string
	var indexes []int
	for _, col := range columns {
		if idx := rs.ColumnIndex(col); idx >= 0 {
			headers = append(headers, col)
			indexes = append(indexes, idx)
		}
	}
	if len(headers) == 0 {
		headers = rs.Columns
		for i := range rs.Columns {
			indexes = append(indexes, i)
		}
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxNameWidth := getMaxTableNameWidth(cfg, len(headers))

	count := len(rs.Rows)
	if limit > 0 && limit < count {
		count = limit
	}

	var data [][]string
	for _, row := range rs.Rows[:count] {
		rec := make([]string, len(indexes))
		for i, idx := range indexes {
			var cell string
			if idx < len(row) {
				cell = schema.CellString(row[idx])
			}
			if headers[i] == winLossColumn {
				cell = contract.GetColorWinLoss(cell, cfg.UseColors)
			}
			rec[i] = truncateCell(cell, maxNameWidth)
		}
		data = append(data, rec)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d of %d rows\n", count, len(rs.Rows))
	return err
}

// PrintTeamsTable renders the static franchise registry.
func PrintTeamsTable(w io.Writer, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Abbr", "Full Name", "ID"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, t := range schema.Teams {
		data = append(data, []string{t.Abbreviation, t.FullName, strconv.Itoa(t.ID)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// PrintDateResultsTable renders the per-date outcomes of a range fetch.
func PrintDateResultsTable(w io.Writer, results []schema.DateResult, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Status", "Detail"})

	maxNameWidth := getMaxTableNameWidth(cfg, 3)

	var data [][]string
	failed := 0
	for _, r := range results {
		detail := ""
		if r.Err != nil {
			failed++
			detail = truncateCell(r.Err.Error(), maxNameWidth)
		} else {
			detail = fmt.Sprintf("%d bytes", len(r.Doc))
		}
		data = append(data, []string{
			r.Date.Format(contract.DateFormat),
			contract.GetColorOutcome(r.Err, cfg.UseColors),
			detail,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Fetched %d dates (%d failed)\n", len(results), failed)
	return err
}

// PrintSavedSummary reports where an export landed.
func PrintSavedSummary(w io.Writer, rows int, path string) error {
	_, err := fmt.Fprintf(w, "Saved %d rows to %s\n", rows, path)
	return err
}

// getMaxTableNameWidth calculates the widest a free-text cell may grow
// based on terminal width and the number of table columns.
func getMaxTableNameWidth(cfg *contract.Config, columns int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for borders, separators and the other columns
	available := termWidth - columns*12
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

// truncateCell trims a cell to maxWidth runes with an ellipsis suffix.
func truncateCell(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}
