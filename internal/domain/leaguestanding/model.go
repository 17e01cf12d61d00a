package leaguestanding

// Table holds the second-column cell text of every row of one HTML table,
// header rows included, in document order.
type Table struct {
	Rows []string
}

// Page is a parsed standings page.
type Page struct {
	Tables []Table
}

// Roster returns every non-empty team cell on the page, deduplicated, in
// first-seen order.
func (p Page) Roster() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, table := range p.Tables {
		for _, cell := range table.Rows {
			if cell == "" {
				continue
			}
			if _, ok := seen[cell]; ok {
				continue
			}
			seen[cell] = struct{}{}
			out = append(out, cell)
		}
	}

	return out
}

// LocateRow returns the table-local row index of the first row whose team
// cell equals name exactly. Index 0 is each table's header row and is never
// matched, so the first data row is 1. Numbering restarts in every table.
func (p Page) LocateRow(name string) (int, bool) {
	for _, table := range p.Tables {
		for idx, cell := range table.Rows {
			if idx == 0 {
				continue
			}
			if cell == name {
				return idx, true
			}
		}
	}

	return 0, false
}
