package llm

import (
	"github.com/rs/zerolog/log"
)

// Per-million-token prices, USD. Rough Sonnet-class pricing; only used to
// give operators an order-of-magnitude cost signal in the logs.
const (
	inputCostPerMTok  = 3.0
	outputCostPerMTok = 15.0
)

// logUsage records the token counts and estimated cost of one model call.
func logUsage(model string, inputTokens, outputTokens, durationMs int64) {
	costUSD := float64(inputTokens)/1_000_000.0*inputCostPerMTok +
		float64(outputTokens)/1_000_000.0*outputCostPerMTok

	log.Debug().
		Str("event", "model_usage").
		Str("model", model).
		Int64("input_tokens", inputTokens).
		Int64("output_tokens", outputTokens).
		Float64("cost_usd", costUSD).
		Int64("duration_ms", durationMs).
		Msg("model call")
}
