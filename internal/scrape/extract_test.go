package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackr-engine/internal/config"
	"trackr-engine/internal/domain"
)

const baseURL = "https://app.example.com/uk-finance/graduate-programmes"

// 3 category markers, 7 data rows: one malformed (no company), one Sponsors
// placeholder. 5 records should survive, tagged with the nearest preceding
// category.
const syntheticPage = `
<html><body><table>
<tr><td>Bulge Bracket</td></tr>
<tr>
  <td>Open</td>
  <td><a href="/companies/gs">Goldman Sachs</a></td>
  <td><a href="https://careers.gs.com/grad">IBD Analyst</a></td>
  <td>1 Sep 24</td><td>1 Dec 24</td><td>15 Aug 23</td>
  <td>3</td><td>HireVue</td><td>Yes</td><td>Yes</td><td>No</td><td>Yes</td><td>Rolling</td>
</tr>
<tr>
  <td>Closed</td><td>JPMorgan</td><td>Markets Analyst</td>
  <td>not a date</td><td></td><td></td>
</tr>
<tr>
  <td>Open</td><td></td><td>Mystery Role</td><td>1 Sep 24</td><td>1 Dec 24</td>
</tr>
<tr><td>Elite Boutique</td><td></td></tr>
<tr>
  <td>Open</td><td>Evercore</td><td>Advisory Analyst</td><td>2 Oct 24</td><td></td>
</tr>
<tr>
  <td></td><td>Sponsors</td><td>Promoted</td><td></td><td></td><td></td>
</tr>
<tr><td>Consulting</td></tr>
<tr>
  <td>Open</td><td>McKinsey</td><td>Business Analyst</td><td>5 Aug 24</td><td>30 Sep 24</td>
</tr>
<tr>
  <td>Open</td><td>Bain</td><td>Associate Consultant</td><td></td><td></td>
</tr>
</table></body></html>`

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractRoles(t *testing.T) {
	doc := parseDoc(t, syntheticPage)

	recs := ExtractRoles(doc, baseURL, config.DefaultCategoryKeywords, config.DefaultSentinelCompanies)
	require.Len(t, recs, 5)

	gs := recs[0]
	assert.Equal(t, "Bulge Bracket", gs.Category)
	assert.Equal(t, "Goldman Sachs", gs.CompanyName)
	assert.Equal(t, "https://app.example.com/companies/gs", gs.CompanyLink)
	assert.Equal(t, "IBD Analyst", gs.RoleTitle)
	assert.Equal(t, "https://careers.gs.com/grad", gs.RoleLink)
	assert.Equal(t, "2024-09-01", gs.ApplicationOpens)
	assert.Equal(t, "2024-12-01", gs.ApplicationCloses)
	assert.Equal(t, "2023-08-15", gs.LastYearOpened)
	assert.Equal(t, "3", gs.InterviewStages)
	assert.Equal(t, "HireVue", gs.AssessmentPlatform)
	assert.Equal(t, "Rolling", gs.Notes)

	jpm := recs[1]
	assert.Equal(t, "Bulge Bracket", jpm.Category)
	assert.Equal(t, "JPMorgan", jpm.CompanyName)
	assert.Equal(t, "", jpm.CompanyLink)
	assert.Equal(t, "", jpm.ApplicationOpens, "unparseable date is absent")
	assert.Equal(t, "", jpm.Notes, "cells past the row length read as empty")

	assert.Equal(t, "Elite Boutique", recs[2].Category)
	assert.Equal(t, "Evercore", recs[2].CompanyName)

	assert.Equal(t, "Consulting", recs[3].Category)
	assert.Equal(t, "McKinsey", recs[3].CompanyName)
	assert.Equal(t, "Consulting", recs[4].Category)
	assert.Equal(t, "Bain", recs[4].CompanyName)
}

func TestExtractRolesUncategorizedBeforeFirstMarker(t *testing.T) {
	doc := parseDoc(t, `
<table>
<tr><td>Open</td><td>Acme</td><td>Analyst</td><td></td><td></td></tr>
</table>`)

	recs := ExtractRoles(doc, baseURL, config.DefaultCategoryKeywords, config.DefaultSentinelCompanies)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.DefaultCategory, recs[0].Category)
}

func TestExtractRolesSentinelsConfigurable(t *testing.T) {
	doc := parseDoc(t, `
<table>
<tr><td></td><td>Promo Row</td><td>x</td><td></td><td></td></tr>
<tr><td></td><td>Real Co</td><td>y</td><td></td><td></td></tr>
</table>`)

	recs := ExtractRoles(doc, baseURL, nil, []string{"Promo Row"})
	require.Len(t, recs, 1)
	assert.Equal(t, "Real Co", recs[0].CompanyName)
}

func TestExtractRolesEmptyPage(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>maintenance</p></body></html>`)
	recs := ExtractRoles(doc, baseURL, config.DefaultCategoryKeywords, config.DefaultSentinelCompanies)
	assert.Empty(t, recs)
}

func TestExtractRolesDeterministic(t *testing.T) {
	a := ExtractRoles(parseDoc(t, syntheticPage), baseURL, config.DefaultCategoryKeywords, config.DefaultSentinelCompanies)
	b := ExtractRoles(parseDoc(t, syntheticPage), baseURL, config.DefaultCategoryKeywords, config.DefaultSentinelCompanies)
	assert.Equal(t, a, b)
}
