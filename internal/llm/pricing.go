package llm

import "strings"

// ModelCost holds per-million-token pricing in USD.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// modelCosts maps model ID prefixes to pricing. Matched by longest
// prefix so dated model IDs resolve to their family.
var modelCosts = map[string]ModelCost{
	"claude-sonnet-4":            {InputPerMTok: 3.00, OutputPerMTok: 15.00},
	"claude-haiku-4":             {InputPerMTok: 1.00, OutputPerMTok: 5.00},
	"gpt-4o-mini":                {InputPerMTok: 0.15, OutputPerMTok: 0.60},
	"gpt-4o":                     {InputPerMTok: 2.50, OutputPerMTok: 10.00},
	"gemini-2.0-flash":           {InputPerMTok: 0.10, OutputPerMTok: 0.40},
	"gemini-2.0-pro":             {InputPerMTok: 1.25, OutputPerMTok: 5.00},
	"google/gemini-2.0-flash":    {InputPerMTok: 0.10, OutputPerMTok: 0.40},
	"anthropic/claude-sonnet-4":  {InputPerMTok: 3.00, OutputPerMTok: 15.00},
	"openai/gpt-4o-mini":         {InputPerMTok: 0.15, OutputPerMTok: 0.60},
}

// LookupCost returns pricing for a model ID, matching by longest prefix.
// Returns (ModelCost{}, false) for unknown models.
func LookupCost(model string) (ModelCost, bool) {
	var best string
	for prefix := range modelCosts {
		if strings.HasPrefix(model, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return ModelCost{}, false
	}
	return modelCosts[best], true
}

// EstimateCost returns the dollar cost of a usage record for the given
// model, or 0 if the model is unknown.
func EstimateCost(model string, usage Usage) float64 {
	cost, ok := LookupCost(model)
	if !ok {
		return 0
	}
	return float64(usage.InputTokens)/1e6*cost.InputPerMTok +
		float64(usage.OutputTokens)/1e6*cost.OutputPerMTok
}
