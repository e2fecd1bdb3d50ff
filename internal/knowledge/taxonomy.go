package knowledge

// Category names used by the skill categorizer and the dashboard aggregator.
const (
	CategoryTechnical = "Technical Skills"
	CategorySoft      = "Soft Skills"
	CategoryBusiness  = "Business Skills"
)

// skillsTaxonomy classifies skills into categories and subcategories. The
// categorizer walks categories and subcategories in declaration order and
// assigns each skill to the first match.
var skillsTaxonomy = []Category{
	{
		Name: CategoryTechnical,
		Subcategories: []Subcategory{
			{
				Name: "Programming Languages",
				Skills: []string{
					"python", "javascript", "java", "c++", "c#", "php", "ruby", "go", "rust",
					"swift", "kotlin", "typescript", "scala", "r", "matlab", "perl", "bash",
				},
			},
			{
				Name: "Web Technologies",
				Skills: []string{
					"html", "css", "react", "angular", "vue.js", "node.js", "express", "django",
					"flask", "spring", "laravel", "rails", "asp.net", "jquery", "bootstrap",
				},
			},
			{
				Name: "Databases",
				Skills: []string{
					"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra",
					"oracle", "sql server", "sqlite", "dynamodb", "firebase",
				},
			},
			{
				Name: "Cloud & DevOps",
				Skills: []string{
					"aws", "azure", "google cloud", "docker", "kubernetes", "jenkins", "git",
					"terraform", "ansible", "prometheus", "grafana", "nginx", "apache",
				},
			},
			{
				Name: "Data Science",
				Skills: []string{
					"pandas", "numpy", "matplotlib", "seaborn", "scikit-learn", "tensorflow",
					"pytorch", "jupyter", "spark", "hadoop", "tableau", "power bi",
				},
			},
		},
	},
	{
		Name: CategorySoft,
		Subcategories: []Subcategory{
			{
				Name: "Leadership",
				Skills: []string{
					"leadership", "team management", "mentoring", "coaching", "decision making",
					"strategic thinking", "vision", "inspiration", "delegation",
				},
			},
			{
				Name: "Communication",
				Skills: []string{
					"communication", "presentation", "public speaking", "writing", "listening",
					"interpersonal skills", "negotiation", "influence", "storytelling",
				},
			},
			{
				Name: "Problem Solving",
				Skills: []string{
					"problem solving", "critical thinking", "analytical skills", "creativity",
					"innovation", "research", "troubleshooting", "debugging",
				},
			},
			{
				Name: "Project Management",
				Skills: []string{
					"project management", "agile", "scrum", "kanban", "waterfall", "risk management",
					"budgeting", "planning", "coordination", "timeline management",
				},
			},
			{
				Name: "Personal Effectiveness",
				Skills: []string{
					"time management", "organization", "adaptability", "flexibility", "resilience",
					"stress management", "self-motivation", "initiative", "attention to detail",
				},
			},
		},
	},
	{
		Name: CategoryBusiness,
		Subcategories: []Subcategory{
			{
				Name: "Sales & Marketing",
				Skills: []string{
					"sales", "marketing", "customer service", "business development", "account management",
					"lead generation", "branding", "market research", "digital marketing",
				},
			},
			{
				Name: "Finance & Accounting",
				Skills: []string{
					"financial analysis", "accounting", "budgeting", "forecasting", "cost analysis",
					"financial modeling", "audit", "compliance", "tax preparation",
				},
			},
			{
				Name: "Operations",
				Skills: []string{
					"operations management", "supply chain", "logistics", "quality assurance",
					"process improvement", "six sigma", "lean", "inventory management",
				},
			},
			{
				Name: "Human Resources",
				Skills: []string{
					"recruitment", "talent acquisition", "hr management", "employee relations",
					"training", "performance management", "compensation", "benefits",
				},
			},
		},
	},
}
