package knowledge

// careerDomains maps each career domain to the keywords and skills that
// evidence it. Declaration order is significant: scoring ties elsewhere are
// broken by the order domains appear here.
var careerDomains = []Domain{
	{
		Name: "Software Development",
		Keywords: []string{
			"python", "javascript", "java", "c++", "react", "node.js", "angular", "vue.js",
			"sql", "mongodb", "aws", "docker", "kubernetes", "git", "agile", "scrum",
			"api", "rest", "graphql", "microservices", "machine learning", "ai", "typescript",
			"php", "ruby", "go", "rust", "swift", "kotlin", "flutter", "react native",
			"django", "flask", "express", "spring", "laravel", "rails", "asp.net",
			"postgresql", "mysql", "redis", "elasticsearch", "jenkins", "travis ci",
			"terraform", "ansible", "prometheus", "grafana", "nginx", "apache",
		},
	},
	{
		Name: "Data Science",
		Keywords: []string{
			"python", "r", "sql", "pandas", "numpy", "matplotlib", "seaborn", "scikit-learn",
			"tensorflow", "pytorch", "jupyter", "spark", "hadoop", "tableau", "power bi",
			"statistics", "machine learning", "deep learning", "nlp", "computer vision",
			"keras", "xgboost", "lightgbm", "plotly", "bokeh", "d3.js", "apache kafka",
			"elasticsearch", "mongodb", "cassandra", "hive", "pig", "hbase", "zookeeper",
			"airflow", "mlflow", "kubeflow", "fastai", "transformers", "bert", "gpt",
		},
	},
	{
		Name: "Marketing",
		Keywords: []string{
			"digital marketing", "seo", "sem", "social media", "content marketing",
			"email marketing", "google analytics", "facebook ads", "google ads",
			"branding", "market research", "customer acquisition", "conversion optimization",
			"hubspot", "mailchimp", "buffer", "hootsuite", "canva", "figma", "adobe creative suite",
			"google tag manager", "hotjar", "mixpanel", "amplitude", "segment", "zapier",
			"influencer marketing", "affiliate marketing", "retargeting", "a/b testing",
			"customer journey mapping", "persona development", "competitive analysis",
		},
	},
	{
		Name: "Finance",
		Keywords: []string{
			"financial modeling", "excel", "vba", "bloomberg", "reuters", "risk management",
			"investment analysis", "portfolio management", "accounting", "audit",
			"financial planning", "trading", "derivatives", "fixed income", "equity research",
			"credit analysis", "financial statement analysis", "valuation", "mergers and acquisitions",
			"private equity", "venture capital", "hedge funds", "investment banking",
			"sap", "oracle", "quickbooks", "xero", "sage", "matlab", "r", "python",
			"quantitative analysis", "algorithmic trading", "fintech", "blockchain",
		},
	},
	{
		Name: "Healthcare",
		Keywords: []string{
			"patient care", "medical terminology", "epic", "cerner", "clinical research",
			"healthcare administration", "nursing", "pharmacy", "medical coding",
			"healthcare analytics", "telemedicine", "healthcare compliance", "hipaa",
			"electronic health records", "medical billing", "healthcare informatics",
			"clinical trials", "drug development", "medical devices", "healthcare policy",
			"public health", "epidemiology", "biostatistics", "medical imaging",
			"laboratory management", "healthcare quality", "patient safety", "healthcare finance",
		},
	},
	{
		Name: "Education",
		Keywords: []string{
			"teaching", "curriculum development", "student assessment", "classroom management",
			"educational technology", "special education", "adult education", "online learning",
			"academic advising", "educational research", "instructional design", "lms",
			"blackboard", "canvas", "moodle", "google classroom", "zoom", "teams",
			"educational psychology", "learning analytics", "student engagement", "assessment design",
			"educational leadership", "school administration", "higher education", "k-12 education",
		},
	},
	{
		Name: "Design & Creative",
		Keywords: []string{
			"ui/ux design", "graphic design", "web design", "product design", "illustration",
			"adobe creative suite", "photoshop", "illustrator", "indesign", "figma", "sketch",
			"xd", "prototyping", "wireframing", "user research", "usability testing",
			"design systems", "typography", "color theory", "brand identity", "logo design",
			"print design", "digital art", "3d modeling", "animation", "video editing",
			"motion graphics", "interaction design", "information architecture",
		},
	},
	{
		Name: "Sales & Business Development",
		Keywords: []string{
			"sales", "business development", "account management", "customer relationship management",
			"crm", "salesforce", "hubspot crm", "pipedrive", "lead generation", "prospecting",
			"negotiation", "presentation skills", "consultative selling", "solution selling",
			"b2b sales", "b2c sales", "inside sales", "outside sales", "sales operations",
			"sales analytics", "sales forecasting", "territory management", "channel sales",
			"partnership development", "market expansion", "competitive analysis",
		},
	},
	{
		Name: "Human Resources",
		Keywords: []string{
			"recruitment", "talent acquisition", "hr management", "employee relations",
			"performance management", "compensation and benefits", "training and development",
			"workforce planning", "hr analytics", "employee engagement", "diversity and inclusion",
			"hr policies", "labor law", "workplace safety", "hr information systems",
			"workday", "bamboo hr", "gusto", "adp", "payroll", "benefits administration",
			"organizational development", "change management", "hr strategy",
		},
	},
	{
		Name: "Operations & Supply Chain",
		Keywords: []string{
			"operations management", "supply chain management", "logistics", "inventory management",
			"procurement", "vendor management", "quality assurance", "six sigma", "lean",
			"process improvement", "project management", "sap", "oracle", "erp systems",
			"warehouse management", "transportation", "distribution", "manufacturing",
			"production planning", "capacity planning", "demand forecasting", "cost analysis",
		},
	},
	{
		Name: "Cybersecurity",
		Keywords: []string{
			"network security", "information security", "cybersecurity", "penetration testing",
			"vulnerability assessment", "security auditing", "incident response", "threat hunting",
			"security operations", "siem", "splunk", "qradar", "firewall", "ids/ips",
			"encryption", "authentication", "authorization", "compliance", "gdpr", "sox",
			"pci dss", "nist", "iso 27001", "ethical hacking", "malware analysis",
			"digital forensics", "security architecture", "zero trust",
		},
	},
	{
		Name: "Cloud & DevOps",
		Keywords: []string{
			"aws", "azure", "google cloud", "docker", "kubernetes", "jenkins", "gitlab ci",
			"github actions", "terraform", "ansible", "chef", "puppet", "prometheus",
			"grafana", "elk stack", "nginx", "apache", "linux", "bash", "python",
			"infrastructure as code", "continuous integration", "continuous deployment",
			"microservices", "serverless", "containerization", "orchestration", "monitoring",
		},
	},
}
