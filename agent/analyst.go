package agent

import (
	"context"
	"fmt"

	"github.com/etnz/retroprice"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewAnalyst builds the pricing analyst expert. Every answer about index
// values or adjusted prices goes through the given series store.
func NewAnalyst(cpi *retroprice.CPI) *Expert {
	lib := analystLibrary(cpi)

	return &Expert{
		Name: "Analyst",
		Description: `This is a pricing analyst. It knows the yearly averaged US consumer
		price index loaded in this session and can express any US dollar price
		in another year's dollars.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a pricing analyst answering questions about inflation-adjusted
			US dollar prices, typically launch prices of gaming platforms.

			A consumer price index series is loaded in this session. Never estimate
			an index value or an adjusted price yourself: always use the tools,
			they query the loaded series. Start with cpi_bounds when you need to
			know which years the series covers.

			Keep answers short and quote prices the way the tools format them.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// analystLibrary exposes the series store to the model.
func analystLibrary(cpi *retroprice.CPI) []Function {
	adjustedPrice := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "adjusted_price",
			Description: `adjusted_price converts a US dollar price observed in one year into
			another year's dollars, scaling by the yearly averaged consumer price
			index. Target years beyond 2013 are clamped down to 2013; years outside
			the loaded series use its nearest edge.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"price": {
						Type:        genai.TypeNumber,
						Description: "The price in US dollars.",
					},
					"year": {
						Type:        genai.TypeInteger,
						Description: "The year the price was observed.",
					},
					"target_year": {
						Type:        genai.TypeInteger,
						Description: "The year to express the price in. Defaults to 2013.",
					},
				},
				Required: []string{"price", "year"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The adjusted price, currency formatted.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			price, err := numberArg(args, "price")
			if err != nil {
				return errResponse(id, "adjusted_price", err)
			}
			year, err := intArg(args, "year")
			if err != nil {
				return errResponse(id, "adjusted_price", err)
			}
			target := 0
			if _, ok := args["target_year"]; ok {
				if target, err = intArg(args, "target_year"); err != nil {
					return errResponse(id, "adjusted_price", err)
				}
			}
			adjusted, err := cpi.AdjustedPrice(retroprice.USD(price), year, target)
			if err != nil {
				return errResponse(id, "adjusted_price", err)
			}
			return okResponse(id, "adjusted_price", adjusted.String())
		},
	}

	cpiValue := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "cpi_value",
			Description: `cpi_value returns the averaged consumer price index for one year of the loaded series.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": {
						Type:        genai.TypeInteger,
						Description: "The calendar year.",
					},
				},
				Required: []string{"year"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The averaged index value.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			year, err := intArg(args, "year")
			if err != nil {
				return errResponse(id, "cpi_value", err)
			}
			v, ok := cpi.Value(year)
			if !ok {
				return errResponse(id, "cpi_value", fmt.Errorf("the series has no data for year %d", year))
			}
			return okResponse(id, "cpi_value", v.String())
		},
	}

	cpiBounds := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "cpi_bounds",
			Description: `cpi_bounds returns the first and last year covered by the loaded series.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The covered year range.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			first, last, ok := cpi.Bounds()
			if !ok {
				return errResponse(id, "cpi_bounds", fmt.Errorf("the series holds no data"))
			}
			return okResponse(id, "cpi_bounds", fmt.Sprintf("%d to %d (%d years)", first, last, cpi.Len()))
		},
	}

	return []Function{adjustedPrice, cpiValue, cpiBounds}
}

func okResponse(id, name string, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": output}}
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
}

func numberArg(args map[string]any, name string) (float64, error) {
	v, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("missing argument %q", name)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("argument %q is %T, expected a number", name, v)
	}
	return f, nil
}

func intArg(args map[string]any, name string) (int, error) {
	f, err := numberArg(args, name)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
