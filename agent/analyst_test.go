package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/retroprice"
	"google.golang.org/genai"
)

func testLibrary(t *testing.T) Library {
	t.Helper()
	cpi, err := retroprice.ParseCPI(strings.NewReader("DATE VALUE\n2000-01-01 100.0\n2001-01-01 110.0\n"), nil)
	if err != nil {
		t.Fatalf("ParseCPI() failed: %v", err)
	}
	return NewLibrary(analystLibrary(cpi))
}

func call(lib Library, name string, args map[string]any) *genai.FunctionResponse {
	return lib(context.Background(), &genai.FunctionCall{ID: "t1", Name: name, Args: args})
}

func TestAnalystAdjustedPrice(t *testing.T) {
	lib := testLibrary(t)

	resp := call(lib, "adjusted_price", map[string]any{"price": 50.0, "year": 2000.0, "target_year": 2001.0})
	if got := resp.Response["output"]; got != "$55.00" {
		t.Errorf("output = %v, want $55.00 (err=%v)", got, resp.Response["error"])
	}

	// target_year is optional: the default lands on the cutoff, clamped
	// into the series.
	resp = call(lib, "adjusted_price", map[string]any{"price": 50.0, "year": 2000.0})
	if got := resp.Response["output"]; got != "$55.00" {
		t.Errorf("output = %v, want $55.00 (err=%v)", got, resp.Response["error"])
	}
}

func TestAnalystAdjustedPrice_BadArgs(t *testing.T) {
	lib := testLibrary(t)

	resp := call(lib, "adjusted_price", map[string]any{"year": 2000.0})
	if msg, _ := resp.Response["error"].(string); !strings.Contains(msg, `missing argument "price"`) {
		t.Errorf("error = %v, want a missing price report", resp.Response["error"])
	}

	resp = call(lib, "adjusted_price", map[string]any{"price": "fifty", "year": 2000.0})
	if msg, _ := resp.Response["error"].(string); !strings.Contains(msg, "expected a number") {
		t.Errorf("error = %v, want a type report", resp.Response["error"])
	}
}

func TestAnalystCPIValue(t *testing.T) {
	lib := testLibrary(t)

	resp := call(lib, "cpi_value", map[string]any{"year": 2001.0})
	if got := resp.Response["output"]; got != "110" {
		t.Errorf("output = %v, want 110", got)
	}

	resp = call(lib, "cpi_value", map[string]any{"year": 1990.0})
	if msg, _ := resp.Response["error"].(string); !strings.Contains(msg, "no data for year 1990") {
		t.Errorf("error = %v, want a no-data report", resp.Response["error"])
	}
}

func TestAnalystCPIBounds(t *testing.T) {
	lib := testLibrary(t)

	resp := call(lib, "cpi_bounds", nil)
	if got, _ := resp.Response["output"].(string); got != "2000 to 2001 (2 years)" {
		t.Errorf("output = %q, want %q", got, "2000 to 2001 (2 years)")
	}
}

func TestLibraryUnknownFunction(t *testing.T) {
	lib := testLibrary(t)

	resp := call(lib, "launch_rockets", nil)
	if msg, _ := resp.Response["error"].(string); !strings.Contains(msg, "unknown function") {
		t.Errorf("error = %v, want an unknown function report", resp.Response["error"])
	}
}
