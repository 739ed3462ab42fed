package retroprice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/retroprice/logging"
)

// Platform is a raw gaming-platform record as the catalog serves it.
// Records are read-only once produced; enrichment builds new values.
type Platform struct {
	Name          string
	Abbreviation  string
	ReleaseDate   string // as served, e.g. "1985-07-15" or "1985-00-00"
	OriginalPrice Money
}

// ReleaseYear extracts the release year, the digits before the first '-'
// of the release date.
func (p Platform) ReleaseYear() (int, error) {
	yearStr, _, _ := strings.Cut(p.ReleaseDate, "-")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, fmt.Errorf("release date %q has no usable year: %w", p.ReleaseDate, err)
	}
	return year, nil
}

// AdjustedPlatform is a Platform enriched with its release year and the
// inflation-adjusted price.
type AdjustedPlatform struct {
	Platform
	Year          int
	AdjustedPrice Money
}

// Filter drops catalog records that cannot be priced or rendered: a
// record needs a release date, an original price, a name and an
// abbreviation. Rejection is expected and frequent with this catalog, so
// it is never an error: the record is dropped, the missing field is
// named in a warning, and a counter ticks.
type Filter struct {
	log     *logging.Logger
	skipped int
}

func NewFilter(log *logging.Logger) *Filter {
	if log == nil {
		log = logging.Nop()
	}
	return &Filter{log: log}
}

// Valid reports whether the record carries everything downstream stages
// need.
func (f *Filter) Valid(p Platform) bool {
	if p.ReleaseDate == "" {
		f.skip("platform has no release date", "name", p.Name)
		return false
	}
	if p.OriginalPrice.IsZero() {
		f.skip("platform has no original price", "name", p.Name)
		return false
	}
	if p.Name == "" {
		f.skip("platform has no name")
		return false
	}
	if p.Abbreviation == "" {
		f.skip("platform has no abbreviation", "name", p.Name)
		return false
	}
	return true
}

func (f *Filter) skip(msg string, keysAndValues ...any) {
	f.skipped++
	f.log.Warn(msg, keysAndValues...)
}

// Skipped returns how many records were dropped so far.
func (f *Filter) Skipped() int { return f.skipped }
