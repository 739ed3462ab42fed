package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/retroprice"
	"github.com/etnz/retroprice/logging"
)

const cpiFixture = `Title:      Consumer Price Index for All Urban Consumers: All Items
Series ID:  CPIAUCSL

DATE          VALUE
2000-01-01  100.0
2000-07-01  110.0
2001-01-01  115.0
2001-07-01  116.0
`

func TestCPIFlagsLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cpi.txt")
	if err := os.WriteFile(file, []byte(cpiFixture), 0644); err != nil {
		t.Fatal(err)
	}

	// The URL is unreachable on purpose: a present local file must win.
	flags := cpiFlags{file: file, url: "http://127.0.0.1:0/unreachable"}
	series, err := flags.load(logging.Nop())
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}

	if got, want := series.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	first, last, ok := series.Bounds()
	if !ok || first != 2000 || last != 2001 {
		t.Errorf("Bounds() = %d, %d, %v, want 2000, 2001, true", first, last, ok)
	}
}

func TestTargetYear(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, retroprice.ReferenceYear},
		{-3, retroprice.ReferenceYear},
		{2001, 2001},
		{retroprice.ReferenceYear, retroprice.ReferenceYear},
		{2030, retroprice.ReferenceYear},
	}
	for _, tc := range tests {
		if got := targetYear(tc.in); got != tc.want {
			t.Errorf("targetYear(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
