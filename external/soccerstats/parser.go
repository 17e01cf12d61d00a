package soccerstats

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday-predictor/internal/domain/leaguestanding"
)

// ParsePage records the trimmed text of the second cell of every row of
// every table, in document order. Rows of nested tables are recorded under
// each enclosing table as well.
func ParsePage(r io.Reader) (leaguestanding.Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return leaguestanding.Page{}, crerr.Wrap(err, "parse standings html")
	}

	var page leaguestanding.Page
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		rows := make([]string, 0, 24)
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			rows = append(rows, strings.TrimSpace(row.Find("td:nth-child(2)").Text()))
		})
		page.Tables = append(page.Tables, leaguestanding.Table{Rows: rows})
	})

	return page, nil
}
