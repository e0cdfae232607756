// Package agreement holds the collectively-bargained rule sets that workload
// accounting is checked against. Rule sets are immutable reference data; they
// change by negotiation, not at runtime.
package agreement

// Agreement codes known to the registry.
const (
	CodeSUVICO = "SUVICO"
	CodeFlat   = "FLAT"
)

// Rule is one labor agreement's hour ceilings and overtime tiers. Hours are
// decimal; cutoff and night bounds are local clock hours.
type Rule struct {
	Code                   string
	MaxHoursWeekly         float64
	MaxHoursMonthly        float64
	OvertimeThresholdDaily float64
	SaturdayCutoffHour     int
	NightShiftStart        int
	NightShiftEnd          int
}

// Flat reports whether the rule set has no overtime split: every scheduled
// hour is counted as normal.
func (r Rule) Flat() bool {
	return r.Code == CodeFlat
}

var defaultRule = Rule{
	Code:            CodeFlat,
	MaxHoursWeekly:  48,
	MaxHoursMonthly: 176,
}

var rules = map[string]Rule{
	CodeSUVICO: {
		Code:                   CodeSUVICO,
		MaxHoursWeekly:         48,
		MaxHoursMonthly:        176,
		OvertimeThresholdDaily: 8,
		SaturdayCutoffHour:     13,
		NightShiftStart:        22,
		NightShiftEnd:          6,
	},
}

// Resolve returns the rule set for an agreement code. Unknown or empty codes
// resolve to the flat default; Resolve never fails.
func Resolve(code string) Rule {
	if rule, ok := rules[code]; ok {
		return rule
	}
	return defaultRule
}
