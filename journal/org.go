package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block. Facts go in
// the PROPERTIES drawer; Thesis/Execution/Review are left for the trader.
func FormatTradeOrg(t TradeRecord) string {
	heading := fmt.Sprintf("** Trade: %s %s (%s)", t.Symbol, t.Direction, shortID(t.ID))
	created := t.CreatedAt.UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":CREATED: %s\n", created))
	b.WriteString(fmt.Sprintf(":INSTRUMENT: %s\n", t.Symbol))
	b.WriteString(fmt.Sprintf(":CATEGORY: %s\n", t.Category))
	b.WriteString(fmt.Sprintf(":DIRECTION: %s\n", t.Direction))
	b.WriteString(fmt.Sprintf(":ACCOUNT_SIZE: %.2f\n", t.AccountSize))
	b.WriteString(fmt.Sprintf(":RISK_PCT: %.2f\n", t.RiskPercent))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.EntryPrice))
	b.WriteString(fmt.Sprintf(":EXIT_PRICE: %.5f\n", t.ExitPrice))
	b.WriteString(fmt.Sprintf(":STOP_LOSS: %.5f\n", t.StopLoss))
	b.WriteString(fmt.Sprintf(":RISK_AMOUNT: %.2f\n", t.RiskAmount))
	b.WriteString(fmt.Sprintf(":LOT_SIZE: %.4f\n", t.LotSize))
	b.WriteString(fmt.Sprintf(":RR: %.2f\n", t.RiskRewardRatio))
	b.WriteString(fmt.Sprintf(":PROFIT_PIPS: %.1f\n", t.ProfitPips))
	b.WriteString(fmt.Sprintf(":LOSS_PIPS: %.1f\n", t.LossPips))
	b.WriteString(fmt.Sprintf(":PROFIT_USD: %.2f\n", t.ProfitDollars))
	b.WriteString(fmt.Sprintf(":LOSS_USD: %.2f\n", t.LossDollars))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- ")
	b.WriteString(t.Notes)
	b.WriteString("\n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
