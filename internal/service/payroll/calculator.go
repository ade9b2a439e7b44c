package payroll

// DefaultOvertimeMultiplier is the statutory overtime factor applied
// when the caller has no explicit multiplier configured.
const DefaultOvertimeMultiplier = 1.5

// Financials is the full breakdown for one block of worked time. It is
// always recomputed from source records, never cached. Values are kept
// at full float64 precision; rounding happens at presentation.
type Financials struct {
	RegularHours        float64 `json:"regular_hours"`
	OvertimeHours       float64 `json:"overtime_hours"`
	RegularPay          float64 `json:"regular_pay"`
	OvertimePay         float64 `json:"overtime_pay"`
	TotalCost           float64 `json:"total_cost"`
	TotalRevenue        float64 `json:"total_revenue"`
	Profit              float64 `json:"profit"`
	ProfitMargin        float64 `json:"profit_margin"`
	EffectiveHourlyRate float64 `json:"effective_hourly_rate"`
}

// Calculate produces the cost (what the company pays, from costRate)
// and revenue (what the client is billed, from billRate) sides of one
// block of worked time in a single pass, so that profit = revenue - cost
// holds by construction.
//
// Negative hours or rates are accepted as-is; input validation is the
// rate validator's job. Degenerate denominators yield 0, never NaN.
func Calculate(hoursWorked, overtimeHours, costRate, billRate, overtimeMultiplier float64) Financials {
	regularPay := costRate * hoursWorked
	overtimePay := costRate * overtimeHours * overtimeMultiplier
	totalCost := regularPay + overtimePay

	totalRevenue := billRate*hoursWorked + billRate*overtimeHours*overtimeMultiplier

	profit := totalRevenue - totalCost

	profitMargin := 0.0
	if totalRevenue != 0 {
		profitMargin = profit / totalRevenue * 100
	}

	totalHours := hoursWorked + overtimeHours
	effectiveRate := 0.0
	if totalHours != 0 {
		effectiveRate = totalCost / totalHours
	}

	return Financials{
		RegularHours:        hoursWorked,
		OvertimeHours:       overtimeHours,
		RegularPay:          regularPay,
		OvertimePay:         overtimePay,
		TotalCost:           totalCost,
		TotalRevenue:        totalRevenue,
		Profit:              profit,
		ProfitMargin:        profitMargin,
		EffectiveHourlyRate: effectiveRate,
	}
}
