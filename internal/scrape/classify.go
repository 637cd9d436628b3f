package scrape

import (
	"strings"

	"trackr-engine/internal/scrape/util"
)

// RowKind is the classifier's verdict on one raw table row.
type RowKind int

const (
	// RowNoise rows carry neither data nor a category change.
	RowNoise RowKind = iota
	// RowCategory rows announce the grouping label for the rows below them.
	RowCategory
	// RowData rows have enough cells to be handed to the extractor.
	RowData
)

const dataCellMin = 5

// ClassifyRow decides what a row is, threading the running category through
// as an explicit accumulator: (cells, category) -> (kind, category). Only a
// category-marker row changes the accumulator.
//
// A row with fewer than 5 cells is structural. If it also has at most 2 cells
// and its concatenated text contains one of the configured category keywords,
// it becomes the new running category; otherwise it is noise. Rows with 5+
// cells are candidate data rows and go to the extractor unchanged.
func ClassifyRow(cells []string, category string, keywords []string) (RowKind, string) {
	if len(cells) >= dataCellMin {
		return RowData, category
	}

	if len(cells) <= 2 {
		text := util.CleanText(strings.Join(cells, " "))
		if text != "" && matchesCategoryKeyword(text, keywords) {
			return RowCategory, text
		}
	}
	return RowNoise, category
}

// Substring match, case-sensitive: the upstream table renders keywords inside
// longer marker strings like "Bulge Bracket Banks".
func matchesCategoryKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
