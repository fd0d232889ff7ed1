package pipeline

import (
	"sort"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
)

// labeledRecord pairs a raw record with the canonical label it matched.
type labeledRecord struct {
	record domain.RawRecord
	label  string
}

// aggregate computes the two independent group-by-sum reductions over the
// filtered records: human toll (fatalities + injuries, summed exactly in
// integers) and total decoded damage (property + crop, float64). Records are
// accumulated in input order so float rounding is reproducible across runs.
//
// Exactly one row per canonical label present in the input; labels with no
// occurrences produce no row. Also returns the count of unrecognized
// magnitude codes seen while decoding.
func aggregate(catalog *domain.Catalog, records []labeledRecord) (toll, damage []Summary, unrecognized int) {
	tollByLabel := make(map[string]int)
	damageByLabel := make(map[string]float64)

	for _, lr := range records {
		tollByLabel[lr.label] += lr.record.Toll()

		amount, bad := domain.TotalDamage(lr.record)
		damageByLabel[lr.label] += amount
		unrecognized += bad
	}

	toll = make([]Summary, 0, len(tollByLabel))
	for label, v := range tollByLabel {
		toll = append(toll, Summary{EventType: label, Value: float64(v)})
	}
	damage = make([]Summary, 0, len(damageByLabel))
	for label, v := range damageByLabel {
		damage = append(damage, Summary{EventType: label, Value: v})
	}

	rank(catalog, toll)
	rank(catalog, damage)
	return toll, damage, unrecognized
}

// rank orders rows descending by value. Ties break by catalog index
// ascending, so both tables order equal-valued rows identically and output
// is bit-stable across runs.
func rank(catalog *domain.Catalog, rows []Summary) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		ii, _ := catalog.Index(rows[i].EventType)
		ji, _ := catalog.Index(rows[j].EventType)
		return ii < ji
	})
}
