package tagging

import "fmt"

// TableCellSpan is the number of rows and columns a table cell covers. The
// zero value is OneSpan.
type TableCellSpan struct {
	Rows Count
	Cols Count
}

// OneSpan covers a single row and column, i.e. no spanning.
var OneSpan = TableCellSpan{}

func NewTableCellSpan(rows, cols Count) TableCellSpan {
	return TableCellSpan{Rows: rows, Cols: cols}
}

// RowSpanOf spans rows rows and one column.
func RowSpanOf(rows Count) TableCellSpan { return TableCellSpan{Rows: rows} }

// ColSpanOf spans cols columns and one row.
func ColSpanOf(cols Count) TableCellSpan { return TableCellSpan{Cols: cols} }

// RowSpan returns the row count unless it is the implicit default of 1, in
// which case the attribute should be omitted.
func (s TableCellSpan) RowSpan() (Count, bool) {
	if s.Rows.IsOne() {
		return Count{}, false
	}
	return s.Rows, true
}

// ColSpan is the column counterpart of RowSpan.
func (s TableCellSpan) ColSpan() (Count, bool) {
	if s.Cols.IsOne() {
		return Count{}, false
	}
	return s.Cols, true
}

func (s TableCellSpan) String() string {
	return fmt.Sprintf("%sx%s", s.Rows, s.Cols)
}
