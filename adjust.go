package retroprice

import (
	"fmt"
	"iter"

	"github.com/etnz/retroprice/logging"
)

// Adjuster drives catalog records through validation and price
// adjustment, producing enriched records in arrival order.
type Adjuster struct {
	// Filter drops unusable records; consult it for the skip count.
	Filter *Filter
	// Limit caps the number of accepted records. Zero means no cap.
	Limit int
	// TargetYear is the year prices are adjusted to. Zero means
	// ReferenceYear.
	TargetYear int

	cpi *CPI
	log *logging.Logger
}

func NewAdjuster(cpi *CPI, log *logging.Logger) *Adjuster {
	if log == nil {
		log = logging.Nop()
	}
	return &Adjuster{Filter: NewFilter(log), cpi: cpi, log: log}
}

// Process consumes records until the source is exhausted or Limit
// records have been accepted.
//
// A record that fails validation, or whose release date yields no usable
// year, is skipped and counted; an error from the source, or a series
// that cannot answer the adjustment, aborts with no partial result.
func (a *Adjuster) Process(records iter.Seq2[Platform, error]) ([]AdjustedPlatform, error) {
	var out []AdjustedPlatform
	for p, err := range records {
		if err != nil {
			return nil, fmt.Errorf("fetching platforms: %w", err)
		}
		if !a.Filter.Valid(p) {
			continue
		}
		year, err := p.ReleaseYear()
		if err != nil {
			a.Filter.skip("platform has no usable release year", "name", p.Name, "release_date", p.ReleaseDate)
			continue
		}
		adjusted, err := a.cpi.AdjustedPrice(p.OriginalPrice, year, a.TargetYear)
		if err != nil {
			return nil, fmt.Errorf("adjusting %q: %w", p.Name, err)
		}
		out = append(out, AdjustedPlatform{Platform: p, Year: year, AdjustedPrice: adjusted})
		a.log.Debug("platform adjusted", "name", p.Name, "year", year, "price", p.OriginalPrice, "adjusted", adjusted)
		if a.Limit > 0 && len(out) >= a.Limit {
			break
		}
	}
	return out, nil
}
