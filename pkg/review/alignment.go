package review

import (
	"strings"

	"github.com/wmotools/billiejean/pkg/config"
)

// Alignment records which WMO strategic priority areas a document
// touches. Each flag is true iff at least one of the area's keywords
// appears (case-insensitive) anywhere in the document. Computed fresh
// per review and immutable afterwards.
type Alignment struct {
	EarthSystemMonitoring       bool
	EarlyWarnings               bool
	ClimateAction               bool
	CapacityDevelopment         bool
	HydrometeorologicalServices bool
}

// Coverage returns the percentage of strategic areas covered (0-100).
func (a Alignment) Coverage() float64 {
	covered := 0
	for _, flag := range a.flags() {
		if flag.set {
			covered++
		}
	}
	return float64(covered) / float64(len(strategicAreas)) * 100
}

// CoveredAreas returns the display names of covered areas, in the
// fixed strategic order.
func (a Alignment) CoveredAreas() []string {
	return a.areas(true)
}

// MissingAreas returns the display names of areas not covered, in the
// fixed strategic order.
func (a Alignment) MissingAreas() []string {
	return a.areas(false)
}

func (a Alignment) areas(covered bool) []string {
	var names []string
	for _, flag := range a.flags() {
		if flag.set == covered {
			names = append(names, flag.name)
		}
	}
	return names
}

type alignmentFlag struct {
	name string
	set  bool
}

func (a Alignment) flags() []alignmentFlag {
	return []alignmentFlag{
		{"Earth system monitoring", a.EarthSystemMonitoring},
		{"Early warnings", a.EarlyWarnings},
		{"Climate action", a.ClimateAction},
		{"Capacity development", a.CapacityDevelopment},
		{"Hydrometeorological services", a.HydrometeorologicalServices},
	}
}

// lowAlignmentThreshold is the coverage percentage below which a
// document is flagged as strategically misaligned. Strictly below:
// one covered pillar (20%) passes.
const lowAlignmentThreshold = 20

// strategicAreas holds the pillar keyword lists in a fixed order.
// Scanning stops at the first keyword hit per pillar.
var strategicAreas = []struct {
	keywords []string
	assign   func(*Alignment)
}{
	{
		keywords: []string{
			"observation", "monitoring", "data collection", "satellite",
			"weather station", "wigos", "global observing system",
			"measurement", "sensor",
		},
		assign: func(a *Alignment) { a.EarthSystemMonitoring = true },
	},
	{
		keywords: []string{
			"early warning", "forecast", "prediction", "alert",
			"warning system", "preparedness", "risk reduction",
			"disaster", "severe weather",
		},
		assign: func(a *Alignment) { a.EarlyWarnings = true },
	},
	{
		keywords: []string{
			"climate change", "climate action", "adaptation",
			"mitigation", "greenhouse gas", "paris agreement", "unfccc",
			"global warming", "carbon", "climate services",
		},
		assign: func(a *Alignment) { a.ClimateAction = true },
	},
	{
		keywords: []string{
			"capacity", "training", "education", "knowledge transfer",
			"technical assistance", "development", "partnership",
			"cooperation", "support",
		},
		assign: func(a *Alignment) { a.CapacityDevelopment = true },
	},
	{
		keywords: []string{
			"water", "hydrology", "flood", "drought", "water resources",
			"precipitation", "river", "hydrological", "water management",
			"nmhs",
		},
		assign: func(a *Alignment) { a.HydrometeorologicalServices = true },
	},
}

// ScoreAlignment scans the document for strategic priority keywords
// and returns the resulting alignment. The content is lowercased once;
// each pillar stops at its first matching keyword.
func ScoreAlignment(content string) Alignment {
	lower := strings.ToLower(content)

	var a Alignment
	for _, area := range strategicAreas {
		for _, keyword := range area.keywords {
			if strings.Contains(lower, keyword) {
				area.assign(&a)
				break
			}
		}
	}
	return a
}

// alignmentIssues returns the single document-level critical issue for
// low strategic coverage, or nothing when coverage meets the threshold.
func alignmentIssues(a Alignment) []Issue {
	if a.Coverage() >= lowAlignmentThreshold {
		return nil
	}
	issue := NewIssue(AlignmentRuleID, "Strategic Alignment", 0,
		"Content shows minimal alignment with WMO strategic priorities").
		WithSeverity(config.SeverityCritical).
		WithSuggestion("Consider explicitly connecting content to WMO's mission: " +
			"Earth system monitoring, early warnings, climate action, " +
			"capacity development, or hydrometeorological services").
		Build()
	return []Issue{issue}
}

// AlignmentRuleID identifies the engine-level strategic alignment check.
const AlignmentRuleID = "WR100"
