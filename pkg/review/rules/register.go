package rules

import "github.com/wmotools/billiejean/pkg/review"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *review.Registry) {
	// Style rules
	registry.Register(NewOrgCapitalizationRule())     // WR001
	registry.Register(NewSentenceLengthRule())        // WR002
	registry.Register(NewPassiveVoiceRule())          // WR003
	registry.Register(NewInformalAbbreviationsRule()) // WR004
	registry.Register(NewItalicsEmphasisRule())       // WR005

	// Accessibility rules
	registry.Register(NewImageAltTextRule())    // WR010
	registry.Register(NewGenericLinkTextRule()) // WR011

	// Terminology rules
	registry.Register(NewPreferredTerminologyRule()) // WR020

	// Accuracy rules
	registry.Register(NewTemperatureUnitsRule()) // WR030
	registry.Register(NewDateFormatRule())       // WR031

	// Formatting rules
	registry.Register(NewDoubleSpacesRule())       // WR040
	registry.Register(NewPunctuationSpacingRule()) // WR041

	// Link rules
	registry.Register(NewEmptyLinksRule())    // WR050
	registry.Register(NewInsecureLinksRule()) // WR051

	// SEO rules
	registry.Register(NewMetaDescriptionRule()) // WR060
	registry.Register(NewTitlePresenceRule())   // WR061

	// Readability rules
	registry.Register(NewAverageSentenceLengthRule()) // WR070
	registry.Register(NewJargonRule())                // WR071
	registry.Register(NewTargetAudienceRule())        // WR072

	// Stateful trackers
	registry.Register(NewAbbreviationFirstUseRule()) // WR080
	registry.Register(NewHeadingHierarchyRule())     // WR081
	registry.Register(NewHeadingLengthRule())        // WR082

	// Article profile rules
	registry.Register(NewTitleSentenceCaseRule()) // WR090
	registry.Register(NewOpeningEngagementRule()) // WR091
	registry.Register(NewArticleLengthRule())     // WR092
}

// NewRegistry returns a fresh registry with all built-in rules
// registered.
func NewRegistry() *review.Registry {
	registry := review.NewRegistry()
	RegisterAll(registry)
	return registry
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(review.DefaultRegistry)
}
