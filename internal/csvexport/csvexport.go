package csvexport

// Package csvexport renders report rows as RFC 4180 CSV. Columns are
// declared as label plus JMESPath expression and evaluated against each
// row's JSON form, so report shapes follow the wire models without
// per-report marshaling code.

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// utf8BOM prefixes output for spreadsheet apps that sniff encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Column declares one CSV column: the header label and the JMESPath
// expression selecting the value from a row.
type Column struct {
	Label string
	Expr  string
}

// Exporter writes rows as CSV using a fixed column set.
type Exporter struct {
	labels []string
	exprs  []string
}

// New validates the column expressions. Invalid JMESPath fails construction,
// not export time.
func New(columns []Column) (*Exporter, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("at least one column is required")
	}
	e := &Exporter{
		labels: make([]string, 0, len(columns)),
		exprs:  make([]string, 0, len(columns)),
	}
	for _, col := range columns {
		if _, err := jmespath.Compile(col.Expr); err != nil {
			return nil, fmt.Errorf("column %q: compile %q: %w", col.Label, col.Expr, err)
		}
		e.labels = append(e.labels, col.Label)
		e.exprs = append(e.exprs, col.Expr)
	}
	return e, nil
}

// Write renders rows to w: optional BOM, header line, then one line per row
// with CRLF separators and RFC 4180 quoting. Empty input still produces the
// header line.
func (e *Exporter) Write(w io.Writer, rows any, withBOM bool) error {
	if withBOM {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	// Round-trip through JSON so expressions see the same shapes the API
	// serves, regardless of the Go types behind them.
	var generic []any
	if rows != nil {
		data, err := json.Marshal(rows)
		if err != nil {
			return fmt.Errorf("marshal rows: %w", err)
		}
		if err := json.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("rows must serialize to a JSON array: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(e.labels); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(e.exprs))
	for i, row := range generic {
		for j, expr := range e.exprs {
			v, err := jmespath.Search(expr, row)
			if err != nil {
				return fmt.Errorf("row %d column %q: %w", i, e.labels[j], err)
			}
			record[j] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatValue renders a JMESPath result as a CSV cell.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		// Arrays and objects fall back to compact JSON.
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}

// Filename names a report download: <type>-YYYY-MM-DD.csv.
func Filename(reportType string, t time.Time) string {
	return fmt.Sprintf("%s-%s.csv", reportType, t.Format("2006-01-02"))
}
