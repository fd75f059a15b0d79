package content

import (
	"context"
	"time"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/service"
)

// builtinCargoCatalog is the static cargo type catalog used when no remote
// lore service is configured or reachable.
var builtinCargoCatalog = []entity.CargoType{
	{Name: "water filters", Legality: entity.LegalityLegal, Rarity: 0.1, BaseValue: 120, Volume: 2},
	{Name: "medical supplies", Legality: entity.LegalityLegal, Rarity: 0.3, BaseValue: 450, Volume: 3},
	{Name: "ship alloys", Legality: entity.LegalityLegal, Rarity: 0.2, BaseValue: 300, Volume: 8},
	{Name: "protein packs", Legality: entity.LegalityLegal, Rarity: 0.05, BaseValue: 60, Volume: 1},
	{Name: "nav beacons", Legality: entity.LegalityLegal, Rarity: 0.4, BaseValue: 800, Volume: 2},
	{Name: "encrypted datacores", Legality: entity.LegalityRestricted, Rarity: 0.6, BaseValue: 2200, Volume: 1},
	{Name: "military optics", Legality: entity.LegalityRestricted, Rarity: 0.5, BaseValue: 1800, Volume: 2},
	{Name: "synthetic organs", Legality: entity.LegalityRestricted, Rarity: 0.7, BaseValue: 3500, Volume: 2},
	{Name: "plasma rifles", Legality: entity.LegalityIllegal, Rarity: 0.8, BaseValue: 5200, Volume: 4},
	{Name: "void spice", Legality: entity.LegalityIllegal, Rarity: 0.9, BaseValue: 8000, Volume: 1},
	{Name: "stolen artifacts", Legality: entity.LegalityIllegal, Rarity: 0.95, BaseValue: 12000, Volume: 3},
}

// builtinJobTemplates is the static weighted job template catalog.
var builtinJobTemplates = []entity.JobTemplate{
	{
		Type: entity.JobTypeCourier, Weight: 40,
		MinPayout: 500, MaxPayout: 2000,
		MinDuration: 1 * time.Hour, MaxDuration: 4 * time.Hour,
		Descriptions: []string{
			"Priority parcel to the inner docks",
			"Sealed diplomatic pouch, no questions",
			"Perishables on a tight schedule",
		},
	},
	{
		Type: entity.JobTypeSmuggling, Weight: 30,
		MinPayout: 2000, MaxPayout: 8000,
		MinDuration: 2 * time.Hour, MaxDuration: 8 * time.Hour,
		Descriptions: []string{
			"Quiet cargo past the customs cordon",
			"Double-hulled hold required, scanners active",
			"Client pays extra for zero manifest entries",
		},
	},
	{
		Type: entity.JobTypeBounty, Weight: 20,
		MinPayout: 3000, MaxPayout: 12000,
		MinDuration: 4 * time.Hour, MaxDuration: 12 * time.Hour,
		Descriptions: []string{
			"Skip-tracer contract on a debt runner",
			"Station authority wants a saboteur found",
			"Guild bounty, proof of capture required",
		},
	},
	{
		Type: entity.JobTypeSalvage, Weight: 10,
		MinPayout: 1000, MaxPayout: 5000,
		MinDuration: 3 * time.Hour, MaxDuration: 10 * time.Hour,
		Descriptions: []string{
			"Derelict freighter drifting off the lanes",
			"Reactor casing recovery, radiation pay included",
			"Wreck field sweep before the scrappers arrive",
		},
	},
}

// builtinRunProfiles is the static smuggling run profile catalog.
var builtinRunProfiles = []entity.RunProfile{
	{Cargo: "medicinal herbs", Tier: entity.RiskLow, MinValue: 800, MaxValue: 2500},
	{Cargo: "untaxed liquor", Tier: entity.RiskLow, MinValue: 500, MaxValue: 1800},
	{Cargo: "encrypted datacores", Tier: entity.RiskMedium, MinValue: 2000, MaxValue: 6000},
	{Cargo: "restricted tech", Tier: entity.RiskMedium, MinValue: 2500, MaxValue: 7000},
	{Cargo: "plasma weapon crates", Tier: entity.RiskHigh, MinValue: 5000, MaxValue: 15000},
	{Cargo: "void spice shipment", Tier: entity.RiskHigh, MinValue: 6000, MaxValue: 18000},
	{Cargo: "stolen relic convoy", Tier: entity.RiskExtreme, MinValue: 15000, MaxValue: 40000},
}

// builtinProvider serves the static catalogs.
type builtinProvider struct{}

// NewBuiltinProvider creates a ContentProvider backed by the static catalogs.
func NewBuiltinProvider() service.ContentProvider {
	return &builtinProvider{}
}

func (p *builtinProvider) CargoCatalog(_ context.Context) []entity.CargoType {
	return builtinCargoCatalog
}

func (p *builtinProvider) JobTemplates(_ context.Context) []entity.JobTemplate {
	return builtinJobTemplates
}

func (p *builtinProvider) RunProfiles(_ context.Context) []entity.RunProfile {
	return builtinRunProfiles
}
