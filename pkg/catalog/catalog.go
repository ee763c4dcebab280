// Package catalog holds the read-only reference tables of the advisor:
// plants, diseases, treatments, regions, soil advice and lessons.
//
// The tables are package-private and never handed out directly. Every
// accessor returns a copy, and every keyed lookup goes through lookup, so a
// missing key resolves to a documented default instead of an error.
package catalog

import (
	"maps"
	"slices"

	"agriedu/entities"
)

const (
	DefaultCrop     = "tomato"
	DefaultCategory = "agriculture"
	DefaultBaseTHa  = 5.0
	HealthyPlant    = "Healthy plant"
)

var (
	defaultDiseases   = []string{HealthyPlant}
	defaultTreatment  = "Consult an agronomist"
	defaultPrevention = []string{
		"Follow good agronomic practice",
		"Inspect plants regularly",
		"Apply preventive treatments",
		"Keep nutrients balanced",
	}
	defaultRegionalAdvice = []string{"Follow the general recommendations for your region"}
	defaultSoilAdvice     = []string{"Run a soil test for precise recommendations"}
)

func lookup[V any](m map[string]V, key string, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// PlantName returns the display name of a crop code, or the code itself.
func PlantName(code string) string { return lookup(plants, code, code) }

// KnownCrop reports whether code is in the plant catalog.
func KnownCrop(code string) bool {
	_, ok := plants[code]
	return ok
}

// Plants returns a copy of the crop code -> display name table.
func Plants() map[string]string { return maps.Clone(plants) }

// Diseases returns the candidate labels for a crop. Unknown crops get the
// single-element healthy list.
func Diseases(crop string) []string {
	return slices.Clone(lookup(diseases, crop, defaultDiseases))
}

func Treatment(disease string) string { return lookup(treatments, disease, defaultTreatment) }

func Prevention(disease string) []string {
	return slices.Clone(lookup(preventions, disease, defaultPrevention))
}

// BaseYield is the reference yield in tonnes per hectare.
func BaseYield(crop string) float64 { return lookup(baseYields, crop, DefaultBaseTHa) }

// RegionFactor is keyed by region display name; 1.0 when unknown or empty.
func RegionFactor(regionName string) float64 { return lookup(regionFactors, regionName, 1.0) }

func RegionalAdvice(regionName string) []string {
	return slices.Clone(lookup(regionalAdvice, regionName, defaultRegionalAdvice))
}

// SoilAdvice does not vary by crop yet; the crop argument keeps the
// signature stable once per-crop advice lands.
func SoilAdvice(soilType, _ string) []string {
	return slices.Clone(lookup(soilAdvice, soilType, defaultSoilAdvice))
}

func Regions() []entities.Region { return slices.Clone(regions) }

// Lessons returns a deep copy of one category; nil-safe empty for unknown.
func Lessons(category string) []entities.Lesson {
	src := lookup(lessons, category, nil)
	out := make([]entities.Lesson, 0, len(src))
	for _, l := range src {
		l.Topics = slices.Clone(l.Topics)
		out = append(out, l)
	}
	return out
}

// Categories lists lesson categories in sorted order.
func Categories() []string {
	return slices.Sorted(maps.Keys(lessons))
}

func Dashboard() entities.DashboardStats { return dashboard }
