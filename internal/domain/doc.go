// Package domain models National Weather Service (NWS) storm event records
// and the normalization rules applied to them.
//
// # Data Source
//
// Records originate from the NOAA Storm Events database, a tabular archive
// of storm observations going back to 1950. Event types are free-text entries
// made by hundreds of local offices over decades, so the same phenomenon
// appears under many spellings ("TORNADO", "Tornadoes", "TORNDAO", ...).
// Damage figures are stored as a coefficient column plus a single-character
// magnitude code column.
//
// # Canonical Event Types
//
// NWS Directive 10-1605 defines the 48 permitted storm event types. The
// [Catalog] holds these labels, case-folded once at construction, and
// fuzzy-matches raw labels against them with an edit-distance cap. Labels
// further than the cap from every catalog entry (typically narrative text
// misplaced into the type field) do not match and the record is dropped by
// the pipeline filter.
//
// # Magnitude Encoding
//
// Damage amounts are a coefficient scaled by a coded power of ten:
//
//	H → 10^2 (hundreds)        '+' → 10^1
//	K → 10^3 (thousands)       '?', '-', ' ', empty → 10^0
//	M → 10^6 (millions)        '0'-'9' → 10^digit
//	B → 10^9 (billions)
//
// Letter codes are case-insensitive. Any other symbol decodes with exponent
// 0 rather than failing; [DecodeMagnitude] reports such codes so callers can
// count them.
package domain
