package entity

import (
	"time"

	"github.com/google/uuid"
)

// Legality classifies cargo under freeport customs law.
type Legality string

const (
	LegalityLegal      Legality = "legal"
	LegalityRestricted Legality = "restricted"
	LegalityIllegal    Legality = "illegal"
)

// RiskLevel is an enumerated risk tier shared across manifests, black
// market listings and smuggling runs.
type RiskLevel string

const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskExtreme RiskLevel = "extreme"
)

// riskRank orders risk levels for escalation; a manifest's risk never
// regresses below the max implied by any line item.
var riskRank = map[RiskLevel]int{
	RiskLow:     0,
	RiskMedium:  1,
	RiskHigh:    2,
	RiskExtreme: 3,
}

// MaxRisk returns the higher of two risk levels.
func MaxRisk(a, b RiskLevel) RiskLevel {
	if riskRank[b] > riskRank[a] {
		return b
	}

	return a
}

// ImpliedRisk maps cargo legality to the minimum manifest risk it implies.
func ImpliedRisk(legality Legality) RiskLevel {
	switch legality {
	case LegalityRestricted:
		return RiskMedium
	case LegalityIllegal:
		return RiskHigh
	default:
		return RiskLow
	}
}

// RiskTolerance bounds which cargo legalities are eligible when generating
// a manifest: low draws legal goods only, medium adds restricted, high
// draws anything.
type RiskTolerance string

const (
	ToleranceLow    RiskTolerance = "low"
	ToleranceMedium RiskTolerance = "medium"
	ToleranceHigh   RiskTolerance = "high"
)

// Eligible reports whether cargo of the given legality may be drawn under
// this tolerance.
func (t RiskTolerance) Eligible(legality Legality) bool {
	switch t {
	case ToleranceLow:
		return legality == LegalityLegal
	case ToleranceMedium:
		return legality != LegalityIllegal
	case ToleranceHigh:
		return true
	default:
		return false
	}
}

// CargoType is a catalog entry describing a class of cargo.
type CargoType struct {
	Name      string   `json:"name"`       // Catalog name, unique within a catalog.
	Legality  Legality `json:"legality"`   // Customs classification.
	Rarity    float64  `json:"rarity"`     // Rarity factor in [0,1]; scales black market pricing.
	BaseValue float64  `json:"base_value"` // Base unit value in credits.
	Volume    float64  `json:"volume"`     // Volume per unit in cargo-hold units.
}

// CargoItem is one manifest line item.
type CargoItem struct {
	Type      string   `json:"type"`       // Cargo type name.
	Legality  Legality `json:"legality"`   // Legality snapshot from the catalog.
	Quantity  int      `json:"quantity"`   // Units loaded.
	UnitValue float64  `json:"unit_value"` // Value per unit.
	Volume    float64  `json:"volume"`     // Volume per unit.
}

// TotalValue returns the line item's total value.
func (i CargoItem) TotalValue() float64 {
	return i.UnitValue * float64(i.Quantity)
}

// TotalVolume returns the line item's total volume.
func (i CargoItem) TotalVolume() float64 {
	return i.Volume * float64(i.Quantity)
}

// CargoManifest is a generated bundle of cargo line items bounded by a
// ship's capacity. Totals are sums over line items; RiskLevel is the max
// risk implied by any line item.
type CargoManifest struct {
	ID          uuid.UUID   `json:"id"`
	Items       []CargoItem `json:"items"`
	TotalValue  float64     `json:"total_value"`
	TotalVolume float64     `json:"total_volume"`
	RiskLevel   RiskLevel   `json:"risk_level"`
	GeneratedAt time.Time   `json:"generated_at"`
}
