// Package giantbomb is a very small client for the Giantbomb.com API,
// offering only the GET /platforms/ call, as a paginated iterator.
//
// The API needs a personal key (https://www.giantbomb.com/api/); pass it
// with -giantbomb-api-key or the GIANTBOMB_API_KEY environment variable.
package giantbomb

import (
	"flag"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/retroprice"
	"github.com/etnz/retroprice/logging"
	"github.com/shopspring/decimal"
)

const apiKeyEnv = "GIANTBOMB_API_KEY"

var apiKeyFlag = flag.String("giantbomb-api-key", "", "Giantbomb API key to use for fetching the platform catalog.\n If missing it will read the environment variable \""+apiKeyEnv+"\". You can get one at https://www.giantbomb.com/api/")

// APIKey returns the key from the flag, falling back to the environment.
func APIKey() string {
	if *apiKeyFlag == "" {
		*apiKeyFlag = os.Getenv(apiKeyEnv)
	}
	return *apiKeyFlag
}

const defaultBaseURL = "https://www.giantbomb.com/api"

// fieldList restricts the payload to what the report consumes.
const fieldList = "release_date,original_price,name,abbreviation"

// Client queries the Giantbomb API.
type Client struct {
	Key     string
	BaseURL string
	HTTP    *http.Client
	Log     *logging.Logger
}

// NewClient returns a Client hitting the public API through a disk cache
// that expires daily.
func NewClient(key string, log *logging.Logger) *Client {
	if log == nil {
		log = logging.Nop()
	}
	return &Client{Key: key, BaseURL: defaultBaseURL, HTTP: daily(log), Log: log}
}

func (c *Client) log() *logging.Logger {
	if c.Log == nil {
		return logging.Nop()
	}
	return c.Log
}

// Platforms yields catalog records most recent release first, fetching
// pages on demand; with limit > 0 it stops after that many records and
// fetches no further page. A transport or API failure is yielded once as
// the error and ends the sequence.
func (c *Client) Platforms(limit int) iter.Seq2[retroprice.Platform, error] {
	return func(yield func(retroprice.Platform, error) bool) {
		fail := func(err error) { yield(retroprice.Platform{}, err) }

		total := -1
		fetched := 0
		yielded := 0
		for total < 0 || fetched < total {
			var doc any
			if err := jwget(c.HTTP, c.pageURL(fetched), &doc); err != nil {
				fail(fmt.Errorf("querying platforms: %w", err))
				return
			}
			if err := apiError(doc); err != nil {
				fail(err)
				return
			}

			if total < 0 {
				// sample payload:
				// {
				//   "error": "OK",
				//   "status_code": 1,
				//   "number_of_total_results": 157,
				//   "number_of_page_results": 100,
				//   "results": [ {"name": ..., "abbreviation": ...,
				//                 "release_date": ..., "original_price": ...} ]
				// }
				t, err := intAt(doc, "$.number_of_total_results")
				if err != nil {
					fail(err)
					return
				}
				total = t
			}
			page, err := intAt(doc, "$.number_of_page_results")
			if err != nil {
				fail(err)
				return
			}
			fetched += page

			jresults, err := jsonpath.Get("$.results", doc)
			if err != nil {
				fail(fmt.Errorf("platforms payload has no results: %w", err))
				return
			}
			results, ok := jresults.([]any)
			if !ok {
				fail(fmt.Errorf("platforms payload results is %T, not a list", jresults))
				return
			}
			for _, item := range results {
				c.log().Debug("yielding platform", "count", yielded+1, "total", total)
				if !yield(c.platformOf(item), nil) {
					return
				}
				yielded++
				if limit > 0 && yielded >= limit {
					return
				}
			}
			// An empty page with results still missing would loop on the
			// same offset forever.
			if page == 0 {
				return
			}
		}
	}
}

// pageURL builds the /platforms/ query for one page.
func (c *Client) pageURL(offset int) string {
	v := url.Values{}
	v.Set("api_key", c.Key)
	v.Set("format", "json")
	v.Set("sort", "release_date:desc")
	v.Set("field_list", fieldList)
	v.Set("offset", strconv.Itoa(offset))
	return c.BaseURL + "/platforms/?" + v.Encode()
}

// platformOf maps one loosely-typed result item to a record. Missing or
// unusable values become zero fields, left for the validation stage to
// report.
func (c *Client) platformOf(item any) retroprice.Platform {
	rec, _ := item.(map[string]any)
	return retroprice.Platform{
		Name:          stringField(rec, "name"),
		Abbreviation:  stringField(rec, "abbreviation"),
		ReleaseDate:   stringField(rec, "release_date"),
		OriginalPrice: c.priceOf(rec["original_price"]),
	}
}

func stringField(rec map[string]any, key string) string {
	s, _ := rec[key].(string)
	return s
}

// priceOf coerces the original_price value, which this API serves as a
// number, a string, or null.
func (c *Client) priceOf(jval any) retroprice.Money {
	switch v := jval.(type) {
	case float64:
		return retroprice.USD(v)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			c.log().Debug("unreadable original_price", "value", v)
			return retroprice.Money{}
		}
		return retroprice.USD(d)
	default:
		return retroprice.Money{}
	}
}

// apiError surfaces the envelope's own failure report: the API answers
// 200 with {"error": "Invalid API Key", "status_code": 100, ...}.
func apiError(doc any) error {
	if jval, err := jsonpath.Get("$.error", doc); err == nil {
		if msg, ok := jval.(string); ok && msg != "OK" {
			return fmt.Errorf("giantbomb API error: %s", msg)
		}
	}
	if code, err := intAt(doc, "$.status_code"); err == nil && code != 1 {
		return fmt.Errorf("giantbomb API error: status code %d", code)
	}
	return nil
}

// intAt reads an integer at a json path. This API is never clear about
// whether counters are numbers or strings, so both are accepted.
func intAt(doc any, path string) (int, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, fmt.Errorf("platforms payload misses %q: %w", path, err)
	}
	switch v := jval.(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("platforms payload %q is an invalid number %q: %w", path, v, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("platforms payload %q is %T, not a number", path, jval)
	}
}
