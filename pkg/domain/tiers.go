package domain

// featureImplies maps a purchasable feature to the narrower features it also
// grants. all_features is handled by Grants directly.
var featureImplies = map[Feature][]Feature{
	FeatureContractAnalysis: {FeatureBasicAnalysis},
	FeatureSimulations:      {FeatureLimitedSimulations},
}

// Grants reports whether the feature list contains f, either directly or
// through a broader feature that subsumes it.
func Grants(features []Feature, f Feature) bool {
	for _, have := range features {
		if have == f || have == FeatureAllFeatures {
			return true
		}

		for _, implied := range featureImplies[have] {
			if implied == f {
				return true
			}
		}
	}

	return false
}

// tierCatalog is the static tier table.
var tierCatalog = map[Tier]TierSpec{
	TierFree: {
		Tier:                 TierFree,
		MonthlyPriceLamports: 0,
		MonthlyPriceUSD:      0,
		Features:             []Feature{FeatureBasicAnalysis, FeatureLimitedSimulations},
		APICallsLimit:        100,
		Description:          "Free tier with basic features",
	},
	TierBasic: {
		Tier:                 TierBasic,
		MonthlyPriceLamports: 5_000_000, // 0.005 SOL
		MonthlyPriceUSD:      0.50,
		Features:             []Feature{FeatureContractAnalysis, FeatureSimulations, FeatureIntentVerification},
		APICallsLimit:        10_000,
		Description:          "Basic tier for regular users",
	},
	TierPro: {
		Tier:                 TierPro,
		MonthlyPriceLamports: 50_000_000, // 0.05 SOL
		MonthlyPriceUSD:      5,
		Features: []Feature{
			FeatureContractAnalysis, FeatureSimulations, FeatureIntentVerification,
			FeatureMaliciousDetection, FeaturePriorityQueue,
		},
		APICallsLimit:   100_000,
		PrioritySupport: true,
		Description:     "Pro tier for advanced users",
	},
	TierEnterprise: {
		Tier:                 TierEnterprise,
		MonthlyPriceLamports: 500_000_000, // 0.5 SOL
		MonthlyPriceUSD:      50,
		Features: []Feature{
			FeatureAllFeatures, FeatureCustomAnalysis, FeatureAPIAccess,
			FeaturePriorityQueue, FeatureDedicatedSupport,
		},
		APICallsLimit:   1_000_000,
		PrioritySupport: true,
		Description:     "Enterprise tier with full access",
	},
}

// TierCatalog returns the specs of all tiers ordered by access level.
func TierCatalog() []TierSpec {
	return []TierSpec{
		tierCatalog[TierFree],
		tierCatalog[TierBasic],
		tierCatalog[TierPro],
		tierCatalog[TierEnterprise],
	}
}

// TierByName looks up the spec of a tier. The second return value reports
// whether the tier exists.
func TierByName(t Tier) (TierSpec, bool) {
	spec, ok := tierCatalog[t]

	return spec, ok
}
