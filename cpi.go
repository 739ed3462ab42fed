package retroprice

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/retroprice/logging"
	"github.com/shopspring/decimal"
)

// ReferenceYear is the last curated year of the FRED dataset this tool
// was calibrated against. It is the default adjustment target, and the
// ceiling: targets beyond it are clamped down to it.
const ReferenceYear = 2013

// dataHeader is the prefix of the line separating the FRED file preamble
// from the data rows ("DATE          VALUE").
const dataHeader = "DATE "

// FormatError reports input that never reaches its data section: no line
// carried the data header, so nothing could be ingested.
type FormatError struct {
	Header string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid series format: no line starts with %q", e.Header)
}

// ParseError reports a malformed data row. Line is 1-based within the
// whole input, and the underlying cause is wrapped.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid series data at line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LookupError reports an adjustment query the series cannot answer.
// Year is zero when the series holds no data at all.
type LookupError struct {
	Year int
}

func (e *LookupError) Error() string {
	if e.Year == 0 {
		return "cpi lookup: no data loaded"
	}
	return fmt.Sprintf("cpi lookup: no data for year %d", e.Year)
}

// CPI stores one averaged consumer-price-index value per calendar year.
//
// A CPI is built once by ParseCPI and read-only afterwards, so concurrent
// readers need no locking.
type CPI struct {
	years     map[int]decimal.Decimal
	firstYear int
	lastYear  int
}

// ParseCPI reads a FRED series text file and reduces it to one arithmetic
// mean per calendar year.
//
// Everything before the data header line is discarded; if the input ends
// without one the result is a FormatError. Each following line must hold
// a date and a value, the year being the digits before the first '-' of
// the date. Any malformed row is a ParseError and no partial series is
// returned. Rows are assumed chronological: the series bounds come from
// the first and the last row.
func ParseCPI(r io.Reader, log *logging.Logger) (*CPI, error) {
	if log == nil {
		log = logging.Nop()
	}
	sc := bufio.NewScanner(r)

	n := 0 // input line number
	found := false
	for sc.Scan() {
		n++
		if strings.HasPrefix(sc.Text(), dataHeader) {
			found = true
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading series: %w", err)
	}
	if !found {
		return nil, &FormatError{Header: dataHeader}
	}

	c := &CPI{years: make(map[int]decimal.Decimal)}
	currentYear := 0
	var sum decimal.Decimal
	count, rows := 0, 0
	for sc.Scan() {
		n++
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &ParseError{Line: n, Text: line, Err: fmt.Errorf("want 2 fields, got %d", len(fields))}
		}
		yearStr, _, _ := strings.Cut(fields[0], "-")
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, &ParseError{Line: n, Text: line, Err: err}
		}
		value, err := decimal.NewFromString(fields[1])
		if err != nil {
			return nil, &ParseError{Line: n, Text: line, Err: err}
		}

		if rows == 0 {
			c.firstYear = year
		}
		c.lastYear = year
		rows++

		// A new year closes out the previous one with its mean.
		if year != currentYear {
			if count > 0 {
				c.years[currentYear] = sum.Div(decimal.NewFromInt(int64(count)))
			}
			currentYear = year
			sum = decimal.Decimal{}
			count = 0
		}
		sum = sum.Add(value)
		count++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading series: %w", err)
	}
	// Close out the year still in progress, unless the input revisited a
	// year whose mean is already stored.
	if count > 0 {
		if _, ok := c.years[currentYear]; !ok {
			c.years[currentYear] = sum.Div(decimal.NewFromInt(int64(count)))
		}
	}

	log.Debug("cpi series loaded", "years", len(c.years), "first", c.firstYear, "last", c.lastYear)
	return c, nil
}

// AdjustedPrice converts a price observed in sourceYear into targetYear
// money, scaling by the ratio of the two years' averaged index values.
//
// A targetYear of zero, or past ReferenceYear, means ReferenceYear. Both
// years are then clamped into the observed range, so a platform released
// before the first record is priced with the oldest index available.
func (c *CPI) AdjustedPrice(price Money, sourceYear, targetYear int) (Money, error) {
	if len(c.years) == 0 {
		return Money{}, &LookupError{}
	}
	if targetYear <= 0 || targetYear > ReferenceYear {
		targetYear = ReferenceYear
	}
	sourceYear = c.clampYear(sourceYear)
	targetYear = c.clampYear(targetYear)

	source, ok := c.years[sourceYear]
	if !ok || source.IsZero() {
		// A zero index cannot scale anything.
		return Money{}, &LookupError{Year: sourceYear}
	}
	target, ok := c.years[targetYear]
	if !ok {
		return Money{}, &LookupError{Year: targetYear}
	}
	// Multiply before dividing to keep the identity case exact.
	return price.Mul(target).Div(source), nil
}

func (c *CPI) clampYear(year int) int {
	if year < c.firstYear {
		return c.firstYear
	}
	if year > c.lastYear {
		return c.lastYear
	}
	return year
}

// Value returns the averaged index for a year, without clamping.
func (c *CPI) Value(year int) (decimal.Decimal, bool) {
	v, ok := c.years[year]
	return v, ok
}

// Bounds returns the first and last observed years. ok is false when the
// series holds no data.
func (c *CPI) Bounds() (first, last int, ok bool) {
	if len(c.years) == 0 {
		return 0, 0, false
	}
	return c.firstYear, c.lastYear, true
}

// Len returns the number of years in the series.
func (c *CPI) Len() int { return len(c.years) }
