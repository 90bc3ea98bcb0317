package param

import "fmt"

// Display formatters for use with Parameter.WithFormatter. Each takes the
// plain value.

// DecibelFormatter formats dB values, showing -inf at or below -60 dB.
func DecibelFormatter(db float64) string {
	if db <= -60 {
		return "-inf dB"
	}
	return fmt.Sprintf("%.1f dB", db)
}

// FrequencyFormatter formats Hz values, switching to kHz at 1000 Hz.
func FrequencyFormatter(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// PercentFormatter formats a 0-100 value as a percentage.
func PercentFormatter(value float64) string {
	return fmt.Sprintf("%.0f%%", value)
}

// OnOffFormatter formats a switch.
func OnOffFormatter(value float64) string {
	if value >= 0.5 {
		return "On"
	}
	return "Off"
}
