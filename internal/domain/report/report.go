package report

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Summary carries the two headline metrics shown by the presentation shell,
// both as raw values and as preformatted display strings.
type Summary struct {
	TotalOrders         int     `json:"total_orders"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalOrdersDisplay  string  `json:"total_orders_display"`
	TotalRevenueDisplay string  `json:"total_revenue_display"`
}

// Report is the full dashboard payload for one filter application.
type Report struct {
	ID          string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`
	States      []string  `json:"states"`
	Summary     Summary   `json:"summary"`
	Charts      []Chart   `json:"charts"`
}

var printer = message.NewPrinter(language.English)

// FormatCount renders an order count with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%v", number.Decimal(n))
}

// FormatCurrency renders a revenue figure as a dollar amount with thousands
// separators and exactly two decimal places.
func FormatCurrency(amount float64) string {
	return printer.Sprintf("$%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// NewSummary builds a Summary with its display strings filled in.
func NewSummary(totalOrders int, totalRevenue float64) Summary {
	return Summary{
		TotalOrders:         totalOrders,
		TotalRevenue:        totalRevenue,
		TotalOrdersDisplay:  FormatCount(totalOrders),
		TotalRevenueDisplay: FormatCurrency(totalRevenue),
	}
}
