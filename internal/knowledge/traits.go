package knowledge

// personalityTraits maps each trait to the indicator words that evidence it.
// Declaration order breaks scoring ties in the inferrer.
var personalityTraits = []Trait{
	{
		Name: "Analytical",
		Indicators: []string{
			"analyze", "analysis", "data", "research", "investigation", "examination",
			"evaluation", "assessment", "metrics", "statistics", "measurement", "testing",
		},
	},
	{
		Name: "Creative",
		Indicators: []string{
			"design", "creative", "innovation", "artistic", "imaginative", "original",
			"unique", "inventive", "visual", "aesthetic", "branding",
		},
	},
	{
		Name: "Leadership",
		Indicators: []string{
			"lead", "leadership", "manage", "management", "supervise", "direct",
			"coordinate", "oversee", "mentor", "coach", "guide", "inspire",
		},
	},
	{
		Name: "Collaborative",
		Indicators: []string{
			"team", "collaborate", "coordinate", "partner", "work with", "support",
			"assist", "help", "cooperate", "teamwork", "group", "collective",
		},
	},
	{
		Name: "Detail-Oriented",
		Indicators: []string{
			"detail", "precise", "accurate", "thorough", "meticulous", "careful",
			"quality", "standards", "compliance", "audit", "review", "check",
		},
	},
	{
		Name: "Adaptable",
		Indicators: []string{
			"adapt", "flexible", "change", "evolve", "learn", "grow", "develop",
			"improve", "enhance", "upgrade", "modernize", "transform",
		},
	},
}
