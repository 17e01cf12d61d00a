package soccerstats

import (
	"strings"
	"testing"
)

func TestParsePage_RecordsSecondCellPerTable(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<table><tr><td>Home</td><td>Away</td></tr><tr><td>x</td><td>Lens</td></tr></table>
<table>
  <tr><th>#</th><th>Team</th></tr>
  <tr><td>1</td><td>PSG</td></tr>
  <tr><td>2</td><td>Lens</td></tr>
  <tr><td>3</td><td>Monaco</td></tr>
</table>
<p>no table here</p>
</body></html>`

	page, err := ParsePage(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}
	if len(page.Tables) != 2 {
		t.Fatalf("expected 2 tables, got=%d", len(page.Tables))
	}

	second := page.Tables[1].Rows
	if strings.Join(second, "|") != "|PSG|Lens|Monaco" {
		t.Fatalf("unexpected rows: %q", second)
	}

	if got := strings.Join(page.Roster(), ","); got != "Away,Lens,PSG,Monaco" {
		t.Fatalf("unexpected roster: %s", got)
	}

	pos, ok := page.LocateRow("Monaco")
	if !ok || pos != 3 {
		t.Fatalf("expected Monaco at table-local 3, got pos=%d ok=%v", pos, ok)
	}
	pos, ok = page.LocateRow("Lens")
	if !ok || pos != 1 {
		t.Fatalf("expected first hit for Lens in first table, got pos=%d ok=%v", pos, ok)
	}
}

func TestParsePage_NoTables(t *testing.T) {
	t.Parallel()

	page, err := ParsePage(strings.NewReader("<html><body><p>maintenance</p></body></html>"))
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}
	if len(page.Tables) != 0 || len(page.Roster()) != 0 {
		t.Fatalf("expected empty page, got %+v", page)
	}
}
