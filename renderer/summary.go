package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/retroprice"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the enriched platform set as a markdown report.
func SummaryMarkdown(platforms []retroprice.AdjustedPlatform, targetYear int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Launch prices in %d dollars", targetYear))
	doc.PlainText(fmt.Sprintf("%d platforms priced.", len(platforms)))

	rows := make([][]string, 0, len(platforms))
	for _, p := range platforms {
		rows = append(rows, []string{
			p.Abbreviation,
			p.Name,
			strconv.Itoa(p.Year),
			p.OriginalPrice.String(),
			p.AdjustedPrice.String(),
		})
	}
	// CustomTable keeps the declared header casing; Table would upper-case it.
	doc.CustomTable(md.TableSet{
		Header: []string{"Abbreviation", "Name", "Year", "Price", "Adjusted price"},
		Rows:   rows,
	}, md.TableOptions{AutoFormatHeaders: false})

	return doc.String()
}

// PlatformsMarkdown renders raw catalog records, incomplete ones included.
func PlatformsMarkdown(platforms []retroprice.Platform) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Giantbomb platform catalog")
	doc.PlainText(fmt.Sprintf("%d records.", len(platforms)))

	rows := make([][]string, 0, len(platforms))
	for _, p := range platforms {
		price := "-"
		if !p.OriginalPrice.IsZero() {
			price = p.OriginalPrice.String()
		}
		rows = append(rows, []string{p.Abbreviation, p.Name, p.ReleaseDate, price})
	}
	doc.CustomTable(md.TableSet{
		Header: []string{"Abbreviation", "Name", "Release date", "Original price"},
		Rows:   rows,
	}, md.TableOptions{AutoFormatHeaders: false})

	return doc.String()
}
