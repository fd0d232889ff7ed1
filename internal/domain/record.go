package domain

// RawRecord is one observed storm event as read from the source table.
// Immutable once read; the free-text EventLabel may carry any casing,
// whitespace, or misspelling.
type RawRecord struct {
	EventLabel string

	Fatalities int
	Injuries   int

	PropertyDamage     float64 // coefficient, scaled by PropertyDamageCode
	PropertyDamageCode string
	CropDamage         float64 // coefficient, scaled by CropDamageCode
	CropDamageCode     string
}

// Toll returns the human toll of the record: fatalities plus injuries.
func (r RawRecord) Toll() int {
	return r.Fatalities + r.Injuries
}

// TotalDamage returns the decoded property plus crop damage for a record,
// along with the number of magnitude codes that were not recognized
// (decoded with exponent 0).
func TotalDamage(r RawRecord) (float64, int) {
	unrecognized := 0

	prop, ok := DecodeMagnitude(r.PropertyDamage, r.PropertyDamageCode)
	if !ok {
		unrecognized++
	}
	crop, ok := DecodeMagnitude(r.CropDamage, r.CropDamageCode)
	if !ok {
		unrecognized++
	}

	return prop + crop, unrecognized
}
