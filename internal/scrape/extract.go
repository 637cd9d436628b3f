package scrape

import (
	"log"

	"github.com/PuerkitoBio/goquery"

	"trackr-engine/internal/domain"
	"trackr-engine/internal/scrape/dates"
	"trackr-engine/internal/scrape/util"
)

// Positional layout of a tracker data row. Cells past the row's actual
// length read as "".
const (
	colStatus = iota // present upstream, not part of the record
	colCompany
	colRole
	colOpens
	colCloses
	colLastYear
	colStages
	colPlatform
	colOnlineApp
	colCV
	colCoverLetter
	colTest
	colNotes
)

// rawRow is one <tr> reduced to what extraction needs: ordered cell texts and
// the first hyperlink of each cell (usually empty).
type rawRow struct {
	cells []string
	hrefs []string
}

func newRawRow(tr *goquery.Selection) rawRow {
	var row rawRow
	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		row.cells = append(row.cells, util.CleanText(td.Text()))
		href, _ := td.Find("a[href]").First().Attr("href")
		row.hrefs = append(row.hrefs, href)
	})
	return row
}

func (r rawRow) cell(i int) string {
	if i < len(r.cells) {
		return r.cells[i]
	}
	return ""
}

func (r rawRow) href(i int) string {
	if i < len(r.hrefs) {
		return r.hrefs[i]
	}
	return ""
}

// ExtractRoles walks every table row in document order, folding the running
// category across category-marker rows and turning each surviving data row
// into a RoleRecord. Rows the classifier calls noise, rows with a sentinel
// company ("Sponsors" and friends still have 5+ cells), and rows that blow up
// mid-extraction are skipped; a bad row never aborts the rest of the pass.
func ExtractRoles(doc *goquery.Document, baseURL string, keywords, sentinels []string) []domain.RoleRecord {
	var out []domain.RoleRecord
	category := domain.DefaultCategory

	doc.Find("tr").Each(func(i int, tr *goquery.Selection) {
		row := newRawRow(tr)

		kind, next := ClassifyRow(row.cells, category, keywords)
		category = next
		if kind != RowData {
			return
		}

		rec, ok := extractRow(row, category, baseURL, sentinels)
		if !ok {
			return
		}
		out = append(out, rec)
	})

	return out
}

// extractRow converts one candidate data row. ok=false means the row was a
// sentinel/promotional entry or failed mid-extraction.
func extractRow(row rawRow, category, baseURL string, sentinels []string) (rec domain.RoleRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[extract] skipping malformed row company=%q err=%v", row.cell(colCompany), r)
			rec, ok = domain.RoleRecord{}, false
		}
	}()

	company := row.cell(colCompany)
	if company == "" || isSentinelCompany(company, sentinels) {
		return domain.RoleRecord{}, false
	}

	opens, _ := dates.Normalize(row.cell(colOpens))
	closes, _ := dates.Normalize(row.cell(colCloses))
	lastYear, _ := dates.Normalize(row.cell(colLastYear))

	return domain.RoleRecord{
		Category:           category,
		CompanyName:        company,
		CompanyLink:        util.ResolveHref(baseURL, row.href(colCompany)),
		RoleTitle:          row.cell(colRole),
		RoleLink:           util.ResolveHref(baseURL, row.href(colRole)),
		ApplicationOpens:   opens,
		ApplicationCloses:  closes,
		LastYearOpened:     lastYear,
		InterviewStages:    row.cell(colStages),
		AssessmentPlatform: row.cell(colPlatform),
		OnlineApplication:  row.cell(colOnlineApp),
		CVRequired:         row.cell(colCV),
		CoverLetter:        row.cell(colCoverLetter),
		TestRequired:       row.cell(colTest),
		Notes:              row.cell(colNotes),
	}, true
}

func isSentinelCompany(company string, sentinels []string) bool {
	for _, s := range sentinels {
		if company == s {
			return true
		}
	}
	return false
}
