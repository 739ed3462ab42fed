package retroprice

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"testing"
)

func testCPI(t *testing.T) *CPI {
	t.Helper()
	cpi, err := ParseCPI(strings.NewReader("DATE VALUE\n2000-01-01 100.0\n2001-01-01 110.0\n"), nil)
	if err != nil {
		t.Fatalf("ParseCPI() failed: %v", err)
	}
	return cpi
}

// seqOf yields the given platforms and counts how many were pulled.
func seqOf(platforms []Platform, pulled *int) iter.Seq2[Platform, error] {
	return func(yield func(Platform, error) bool) {
		for _, p := range platforms {
			if pulled != nil {
				*pulled++
			}
			if !yield(p, nil) {
				return
			}
		}
	}
}

func TestAdjusterProcess(t *testing.T) {
	records := []Platform{
		{Name: "Foo", Abbreviation: "F", ReleaseDate: "2000-01-01", OriginalPrice: USD(50)},
		{Name: "No price", Abbreviation: "NP", ReleaseDate: "2000-01-01"},
		{Name: "Bar", Abbreviation: "B", ReleaseDate: "2001-03-04", OriginalPrice: USD(110)},
	}

	a := NewAdjuster(testCPI(t), nil)
	a.TargetYear = 2001
	got, err := a.Process(seqOf(records, nil))
	if err != nil {
		t.Fatalf("Process() failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d platforms, want 2", len(got))
	}
	// Arrival order is preserved and prices follow the index ratio.
	if got[0].Name != "Foo" || got[1].Name != "Bar" {
		t.Errorf("got order %q, %q, want Foo, Bar", got[0].Name, got[1].Name)
	}
	if !got[0].AdjustedPrice.Equal(USD(55)) {
		t.Errorf("Foo adjusted price = %v, want $55.00", got[0].AdjustedPrice)
	}
	if got[0].Year != 2000 {
		t.Errorf("Foo year = %d, want 2000", got[0].Year)
	}
	if !got[1].AdjustedPrice.Equal(USD(110)) {
		t.Errorf("Bar adjusted price = %v, want $110.00 (identity)", got[1].AdjustedPrice)
	}
	if a.Filter.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", a.Filter.Skipped())
	}
}

func TestAdjusterProcess_Limit(t *testing.T) {
	var records []Platform
	for i := range 5 {
		records = append(records, Platform{
			Name:          fmt.Sprintf("Platform %d", i),
			Abbreviation:  fmt.Sprintf("P%d", i),
			ReleaseDate:   "2000-01-01",
			OriginalPrice: USD(100),
		})
	}

	pulled := 0
	a := NewAdjuster(testCPI(t), nil)
	a.Limit = 2
	got, err := a.Process(seqOf(records, &pulled))
	if err != nil {
		t.Fatalf("Process() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d platforms, want exactly the limit 2", len(got))
	}
	if pulled != 2 {
		t.Errorf("source yielded %d records, want 2 (no pull past the limit)", pulled)
	}
}

func TestAdjusterProcess_LimitCountsAcceptedOnly(t *testing.T) {
	records := []Platform{
		{Name: "Invalid"},
		{Name: "Foo", Abbreviation: "F", ReleaseDate: "2000-01-01", OriginalPrice: USD(50)},
		{Name: "Invalid too", ReleaseDate: "2000-01-01"},
		{Name: "Bar", Abbreviation: "B", ReleaseDate: "2001-01-01", OriginalPrice: USD(20)},
	}

	a := NewAdjuster(testCPI(t), nil)
	a.Limit = 2
	got, err := a.Process(seqOf(records, nil))
	if err != nil {
		t.Fatalf("Process() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d platforms, want 2", len(got))
	}
	if got[0].Name != "Foo" || got[1].Name != "Bar" {
		t.Errorf("got %q, %q, want the two valid records", got[0].Name, got[1].Name)
	}
}

func TestAdjusterProcess_SourceErrorAborts(t *testing.T) {
	boom := errors.New("network down")
	src := func(yield func(Platform, error) bool) {
		if !yield(Platform{Name: "Foo", Abbreviation: "F", ReleaseDate: "2000-01-01", OriginalPrice: USD(50)}, nil) {
			return
		}
		yield(Platform{}, boom)
	}

	a := NewAdjuster(testCPI(t), nil)
	got, err := a.Process(src)
	if !errors.Is(err, boom) {
		t.Fatalf("Process() error = %v, want to wrap %v", err, boom)
	}
	if got != nil {
		t.Errorf("got partial result %v, want none", got)
	}
}

func TestAdjusterProcess_UnusableYearSkips(t *testing.T) {
	records := []Platform{
		{Name: "Soonish", Abbreviation: "S", ReleaseDate: "soon", OriginalPrice: USD(100)},
		{Name: "Foo", Abbreviation: "F", ReleaseDate: "2000-01-01", OriginalPrice: USD(50)},
	}

	a := NewAdjuster(testCPI(t), nil)
	got, err := a.Process(seqOf(records, nil))
	if err != nil {
		t.Fatalf("Process() failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Foo" {
		t.Fatalf("got %v, want only Foo", got)
	}
	if a.Filter.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", a.Filter.Skipped())
	}
}

func TestAdjusterProcess_EmptySeriesFails(t *testing.T) {
	empty, err := ParseCPI(strings.NewReader("DATE VALUE\n"), nil)
	if err != nil {
		t.Fatalf("ParseCPI() failed: %v", err)
	}

	a := NewAdjuster(empty, nil)
	records := []Platform{{Name: "Foo", Abbreviation: "F", ReleaseDate: "2000-01-01", OriginalPrice: USD(50)}}
	_, err = a.Process(seqOf(records, nil))
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("got %T (%v), want *LookupError", err, err)
	}
}
