// Package csvledger parses ledger sheets exported to CSV. Every column is
// optional and the header row may sit below preamble rows such as a sheet
// title, so the parser scans for the header instead of assuming row zero.
package csvledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	enc "github.com/khata-app/khata/internal/encoding"
	"github.com/khata-app/khata/internal/ledger"
)

type Importer struct{}

func New() *Importer {
	return &Importer{}
}

// colIndex maps normalized column names to their index in the row.
type colIndex map[string]int

// Canonical column names. Header cells are normalized (lowercased, spaces
// and underscores dropped) before matching, so "Folio Type", "folio_type"
// and "FolioType" all resolve to colFolioType.
const (
	colType       = "type"
	colDate       = "date"
	colAmount     = "amount"
	colFolioType  = "foliotype"
	colInvestor   = "investor"
	colWorker     = "worker"
	colActionType = "actiontype"
	colLinkID     = "linkid"
)

func (i *Importer) Parse(r io.Reader) ([]ledger.AppendParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no header row found: expected at least type and amount columns")
	}

	return parseRows(cols, rows[headerIdx+1:]), nil
}

// findHeader scans for the first row that names at least the type and
// amount columns.
func findHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := normalize(cell); name != "" {
				cols[name] = i
			}
		}

		if _, hasType := cols[colType]; !hasType {
			continue
		}

		if _, hasAmount := cols[colAmount]; hasAmount {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")

	return strings.ReplaceAll(s, "_", "")
}

// parseRows turns data rows into append params. Sheets carry footer and
// spacer rows, so rows that yield nothing are dropped rather than
// reported as errors. Row order is preserved; the caller appends in order
// so ids stay aligned with the sheet.
func parseRows(cols colIndex, rows [][]string) []ledger.AppendParams {
	var params []ledger.AppendParams

	for _, row := range rows {
		p := ledger.AppendParams{
			Date:       strCell(row, cols, colDate),
			Investor:   strCell(row, cols, colInvestor),
			Worker:     strCell(row, cols, colWorker),
			ActionType: strCell(row, cols, colActionType),
		}

		if s := cellValue(row, cols, colType); s != "" {
			if t, ok := ledger.ParseEntryType(s); ok {
				p.Type = &t
			}
		}

		if s := cellValue(row, cols, colFolioType); s != "" {
			if c, ok := ledger.ParseFolioClass(s); ok {
				p.FolioType = &c
			}
		}

		if s := cellValue(row, cols, colAmount); s != "" {
			if d, err := parseAmount(s); err == nil {
				p.Amount = &d
			}
		}

		if s := cellValue(row, cols, colLinkID); s != "" {
			if id, err := strconv.ParseInt(s, 10, 64); err == nil {
				p.LinkID = &id
			}
		}

		if isEmpty(p) {
			continue
		}

		params = append(params, p)
	}

	return params
}

// parseAmount accepts plain decimals and spreadsheet-formatted numbers
// with thousand separators: "1,200.50" -> 1200.50.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
}

func strCell(row []string, cols colIndex, name string) *string {
	s := cellValue(row, cols, name)
	if s == "" {
		return nil
	}

	return &s
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isEmpty(p ledger.AppendParams) bool {
	return p.Type == nil && p.Date == nil && p.Amount == nil &&
		p.FolioType == nil && p.Investor == nil && p.Worker == nil &&
		p.ActionType == nil && p.LinkID == nil
}
