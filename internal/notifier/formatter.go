package notifier

import (
	"fmt"
	"sort"
	"strings"

	"TrendAdvisor/internal/analyzer"
	"TrendAdvisor/internal/model"
)

// categoryEmoji maps a recommendation category to its report marker.
func categoryEmoji(c model.Category) string {
	switch c {
	case model.BuyCall:
		return "📈"
	case model.BuyPut:
		return "📉"
	default:
		return "⏸"
	}
}

// FormatReport formats a completed analysis into a Telegram message.
func FormatReport(r *analyzer.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s <b>%s</b> | %s\n\n",
		categoryEmoji(r.Recommendation.Category), r.Symbol, r.GeneratedAt.Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Current price: $%.2f\n", r.Projection.CurrentPrice))
	b.WriteString(fmt.Sprintf("Projected (%dd): $%.2f\n", r.Projection.Horizon, r.Projection.ProjectedPrice))

	change := 0.0
	if r.Projection.CurrentPrice != 0 {
		change = (r.Projection.ProjectedPrice - r.Projection.CurrentPrice) / r.Projection.CurrentPrice * 100
	}
	b.WriteString(fmt.Sprintf("Projected move: %+.1f%%\n", change))
	b.WriteString(fmt.Sprintf("Trend line: slope %+.4f, intercept %.2f\n\n",
		r.Projection.Model.Slope, r.Projection.Model.Intercept))

	b.WriteString(fmt.Sprintf("💡 <b>Recommendation: %s</b>\n", r.Recommendation.Category))
	b.WriteString(r.Recommendation.Rationale)
	b.WriteString("\n")

	if r.OptionsAvailable && r.Options != nil {
		b.WriteString("\n" + FormatChainSummary(r.Options))
	} else {
		b.WriteString("\n⚠️ Options data unavailable for this instrument.\n")
	}

	return b.String()
}

// FormatChainSummary renders a compact view of an options chain: the
// nearest expiry and the few most active contracts per side.
func FormatChainSummary(chain *model.OptionsChain) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🧾 <b>Options</b> | expiry %s\n", chain.Expiry.Format("2006-01-02")))
	b.WriteString(formatQuotes("Calls", chain.Calls))
	b.WriteString(formatQuotes("Puts", chain.Puts))
	return b.String()
}

func formatQuotes(label string, quotes []model.OptionQuote) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%d):\n", label, len(quotes)))
	shown := quotes
	if len(shown) > 5 {
		shown = mostActive(quotes, 5)
	}
	for _, q := range shown {
		b.WriteString(fmt.Sprintf("  strike %.2f | last %.2f | bid %.2f ask %.2f | OI %d | IV %.1f%%\n",
			q.Strike, q.LastPrice, q.Bid, q.Ask, q.OpenInterest, q.ImpliedVolatility*100))
	}
	return b.String()
}

// mostActive picks the n quotes with the highest open interest, preserving
// strike order among the selected.
func mostActive(quotes []model.OptionQuote, n int) []model.OptionQuote {
	selected := make([]bool, len(quotes))
	for k := 0; k < n; k++ {
		best := -1
		for i := range quotes {
			if selected[i] {
				continue
			}
			if best == -1 || quotes[i].OpenInterest > quotes[best].OpenInterest {
				best = i
			}
		}
		if best == -1 {
			break
		}
		selected[best] = true
	}
	out := make([]model.OptionQuote, 0, n)
	for i, sel := range selected {
		if sel {
			out = append(out, quotes[i])
		}
	}
	return out
}

// FormatScanSummary renders a one-line-per-symbol digest of a watchlist scan.
func FormatScanSummary(reports []*analyzer.Report, failures map[string]string) string {
	var b strings.Builder
	b.WriteString("📊 <b>Watchlist scan</b>\n\n")
	for _, r := range reports {
		b.WriteString(fmt.Sprintf("%s %s: $%.2f → $%.2f (%s)\n",
			categoryEmoji(r.Recommendation.Category), r.Symbol,
			r.Projection.CurrentPrice, r.Projection.ProjectedPrice,
			r.Recommendation.Category))
	}
	failed := make([]string, 0, len(failures))
	for symbol := range failures {
		failed = append(failed, symbol)
	}
	sort.Strings(failed)
	for _, symbol := range failed {
		b.WriteString(fmt.Sprintf("❌ %s: %s\n", symbol, failures[symbol]))
	}
	return b.String()
}
