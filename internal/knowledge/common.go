package knowledge

// baseSkills lists skills recognized during extraction that are not covered
// by the taxonomy or the domain keyword tables. It is folded into the common
// skills vocabulary together with both tables.
var baseSkills = []string{
	// Technical
	"leadership", "communication", "project management", "teamwork", "problem solving",
	"critical thinking", "time management", "organization", "adaptability", "creativity",
	"analytical skills", "research", "writing", "presentation", "negotiation",
	"customer service", "sales", "marketing", "finance", "accounting", "human resources",
	"operations", "logistics", "supply chain", "quality assurance", "compliance",
	"data analysis", "statistics", "programming", "web development", "mobile development",
	"database management", "cloud computing", "cybersecurity", "network administration",
	"system administration", "devops", "agile", "scrum", "lean", "six sigma",
	"machine learning", "artificial intelligence", "deep learning", "nlp", "computer vision",
	"blockchain", "iot", "robotics", "automation", "api development", "microservices",
	"serverless", "containerization", "kubernetes", "docker", "terraform", "ansible",
	"jenkins", "git", "github", "gitlab", "bitbucket", "jira", "confluence",
	"slack", "teams", "zoom", "webex", "trello", "asana", "notion",

	// Business
	"business development", "strategy", "consulting", "change management", "risk management",
	"budgeting", "forecasting", "financial modeling", "investment analysis", "portfolio management",
	"market research", "competitive analysis", "product management", "brand management",
	"digital transformation", "innovation", "entrepreneurship", "startup", "venture capital",
	"private equity", "investment banking", "trading", "derivatives", "fixed income",

	// Creative
	"graphic design", "ui/ux design", "web design", "product design", "illustration",
	"photography", "video editing", "animation", "motion graphics", "3d modeling",
	"typography", "color theory", "layout design", "brand identity", "logo design",
	"print design", "digital art", "visual communication", "storytelling", "content creation",
}
