package pipeline

import "time"

// Summary is one ranked row: a canonical event type and its metric value.
// Toll values are integral; damage values are dollar sums.
type Summary struct {
	EventType string  `json:"event_type"`
	Value     float64 `json:"value"`
}

// Report is the complete output of one run: both ranked tables plus the
// diagnostic counts that make record loss observable.
type Report struct {
	RankedToll   []Summary `json:"ranked_toll"`
	RankedDamage []Summary `json:"ranked_damage"`

	RecordsIn         int `json:"records_in"`
	RecordsDropped    int `json:"records_dropped"`
	UnrecognizedCodes int `json:"unrecognized_codes"`

	GeneratedAt time.Time `json:"generated_at"`
}

// TopN returns at most n leading rows of a ranking.
func TopN(rows []Summary, n int) []Summary {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
