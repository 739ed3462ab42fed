package renderer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/retroprice"
)

// WriteCSV writes the enriched records as CSV, one row per platform, with
// raw decimal amounts rather than currency-formatted strings.
func WriteCSV(w io.Writer, platforms []retroprice.AdjustedPlatform) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Abbreviation", "Name", "Year", "Price", "Adjusted price"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, p := range platforms {
		row := []string{
			p.Abbreviation,
			p.Name,
			strconv.Itoa(p.Year),
			p.OriginalPrice.Amount().String(),
			p.AdjustedPrice.Amount().String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %q: %w", p.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
