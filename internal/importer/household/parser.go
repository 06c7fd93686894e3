package household

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/MrJamesThe3rd/homebill/internal/encoding"
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

// Parser reads generic household bank/card CSV exports. It locates the header
// row by matching column names against known aliases, so preamble lines
// (account numbers, date ranges) before the real header are skipped.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

var (
	dateAliases     = []string{"日期", "交易日期", "消費日", "date", "transaction date"}
	amountAliases   = []string{"金額", "交易金額", "消費金額", "amount"}
	descAliases     = []string{"說明", "描述", "摘要", "交易說明", "description", "memo"}
	categoryAliases = []string{"類別", "分類", "category"}
)

var dateLayouts = []string{"2006-01-02", "2006/01/02", "2006/1/2", "2006.01.02"}

type columns struct {
	date     int
	amount   int
	desc     int
	category int // -1 when absent
}

func (p *Parser) Parse(r io.Reader, method transaction.PaymentMethod, cardBank string) ([]transaction.CreateParams, error) {
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

	cols, headerIdx, ok := detectHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no header row with date and amount columns found")
	}

	var drafts []transaction.CreateParams

	for _, row := range rows[headerIdx+1:] {
		date, ok := parseDate(cell(row, cols.date))
		if !ok {
			// Footer/summary lines without a date are common; skip them.
			continue
		}

		amount, err := parseAmount(cell(row, cols.amount))
		if err != nil {
			continue
		}

		draft := transaction.CreateParams{
			Date:          date,
			Amount:        amount,
			PaymentMethod: method,
			CardBank:      cardBank,
			Description:   cell(row, cols.desc),
		}

		if cols.category >= 0 {
			draft.Category = cell(row, cols.category)
		}

		drafts = append(drafts, draft)
	}

	return drafts, nil
}

func detectHeader(rows [][]string) (columns, int, bool) {
	for rowIdx, row := range rows {
		cols := columns{date: -1, amount: -1, desc: -1, category: -1}

		for i, cellValue := range row {
			name := strings.ToLower(strings.TrimSpace(cellValue))

			switch {
			case matchesAlias(name, dateAliases):
				cols.date = i
			case matchesAlias(name, amountAliases):
				cols.amount = i
			case matchesAlias(name, descAliases):
				cols.desc = i
			case matchesAlias(name, categoryAliases):
				cols.category = i
			}
		}

		if cols.date >= 0 && cols.amount >= 0 && cols.desc >= 0 {
			return cols, rowIdx, true
		}
	}

	return columns{}, 0, false
}

func matchesAlias(name string, aliases []string) bool {
	for _, alias := range aliases {
		if name == alias {
			return true
		}
	}

	return false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// parseAmount converts a statement amount cell to cents. Thousands separators
// are dropped; a decimal part is taken as cents. Charges signed negative by
// the exporter are normalized to their magnitude, since expense amounts are
// non-negative by contract.
func parseAmount(s string) (int64, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	s = strings.TrimPrefix(s, "-")

	whole, frac, hasFrac := strings.Cut(s, ".")

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}

	cents := units * 100

	if hasFrac {
		if len(frac) > 2 {
			frac = frac[:2]
		}

		for len(frac) < 2 {
			frac += "0"
		}

		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", s, err)
		}

		cents += f
	}

	return cents, nil
}
