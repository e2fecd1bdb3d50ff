package knowledge

// learningResources catalogs free learning resources per domain and tier.
// Domains without an entry simply produce no domain-specific recommendations.
var learningResources = map[string]map[Tier][]string{
	"Software Development": {
		TierBeginner: {
			"freeCodeCamp - Complete Web Development Bootcamp",
			"The Odin Project - Full Stack JavaScript",
			"Harvard CS50 - Introduction to Computer Science",
			"MIT OpenCourseWare - Programming Courses",
			"Khan Academy - Computer Programming",
		},
		TierIntermediate: {
			"MDN Web Docs - Advanced JavaScript",
			"Real Python - Python Tutorials",
			"Node.js Official Documentation",
			"React Official Tutorial",
			"Django Official Documentation",
		},
		TierAdvanced: {
			"System Design Primer - GitHub",
			"Design Patterns - Gang of Four",
			"Clean Code - Robert Martin",
			"Refactoring - Martin Fowler",
			"Effective Java - Joshua Bloch",
		},
	},
	"Data Science": {
		TierBeginner: {
			"Kaggle Learn - Python, SQL, Machine Learning",
			"DataCamp - Free Python for Data Science",
			"Coursera - Machine Learning (Stanford)",
			"edX - Data Science Fundamentals",
			"Google Data Analytics Certificate",
		},
		TierIntermediate: {
			"Fast.ai - Practical Deep Learning",
			"Andrew Ng - Deep Learning Specialization",
			"StatQuest - Statistics and Machine Learning",
			"Towards Data Science - Medium",
			"Analytics Vidhya - Data Science Blog",
		},
		TierAdvanced: {
			"Elements of Statistical Learning",
			"Pattern Recognition and Machine Learning",
			"Deep Learning - Ian Goodfellow",
			"Hands-On Machine Learning - Aurélien Géron",
			"Python for Data Analysis - Wes McKinney",
		},
	},
	"Marketing": {
		TierBeginner: {
			"Google Digital Garage - Digital Marketing",
			"HubSpot Academy - Inbound Marketing",
			"Facebook Blueprint - Social Media Marketing",
			"Google Analytics Academy",
			"Coursera - Digital Marketing Specialization",
		},
		TierIntermediate: {
			"Neil Patel - Digital Marketing Blog",
			"Backlinko - SEO Training",
			"Buffer - Social Media Strategy",
			"Moz - SEO Learning Center",
			"Content Marketing Institute",
		},
		TierAdvanced: {
			"Marketing Analytics - Wharton",
			"Growth Hacking - Sean Ellis",
			"Conversion Rate Optimization - CXL",
			"Advanced Google Analytics",
			"Marketing Attribution Models",
		},
	},
	"Finance": {
		TierBeginner: {
			"Investopedia - Financial Education",
			"Khan Academy - Finance & Capital Markets",
			"Coursera - Financial Markets (Yale)",
			"edX - Introduction to Corporate Finance",
			"Bloomberg Market Concepts",
		},
		TierIntermediate: {
			"CFA Institute - Investment Foundations",
			"Wall Street Prep - Financial Modeling",
			"Breaking Into Wall Street - Excel & Financial Modeling",
			"Corporate Finance Institute - Free Courses",
			"Investing.com - Market Analysis",
		},
		TierAdvanced: {
			"Aswath Damodaran - Valuation",
			"Risk Management - Coursera",
			"Quantitative Finance - MIT OpenCourseWare",
			"Financial Engineering - Columbia",
			"Advanced Corporate Finance - Harvard",
		},
	},
	"Healthcare": {
		TierBeginner: {
			"Coursera - Healthcare IT Fundamentals",
			"edX - Introduction to Health Informatics",
			"NIH - Clinical Research Training",
			"WHO - Public Health Courses",
			"Khan Academy - Health & Medicine",
		},
		TierIntermediate: {
			"Johns Hopkins - Epidemiology",
			"Stanford - Healthcare Innovation",
			"Harvard - Healthcare Management",
			"Mayo Clinic - Clinical Skills",
			"CDC - Public Health Training",
		},
		TierAdvanced: {
			"Clinical Trials - NIH",
			"Healthcare Analytics - MIT",
			"Medical Informatics - Stanford",
			"Healthcare Policy - Harvard",
			"Biostatistics - Johns Hopkins",
		},
	},
	"Education": {
		TierBeginner: {
			"Coursera - Learning How to Learn",
			"edX - Introduction to Teaching",
			"MIT OpenCourseWare - Education",
			"Khan Academy - Teacher Resources",
			"Google for Education - Teacher Center",
		},
		TierIntermediate: {
			"Harvard - Education Leadership",
			"Stanford - Educational Psychology",
			"Columbia - Curriculum Development",
			"Berkeley - Educational Technology",
			"Yale - Teaching Methods",
		},
		TierAdvanced: {
			"Educational Research - MIT",
			"Learning Sciences - Stanford",
			"Educational Policy - Harvard",
			"Assessment Design - Columbia",
			"Educational Leadership - Yale",
		},
	},
}

// generalResources is the fixed "General Development" recommendation set
// appended to every recommendation list regardless of domain or tier.
var generalResources = []string{
	"LinkedIn Learning - Professional Development",
	"Coursera - Career Development Specializations",
	"edX - Professional Certificate Programs",
	"YouTube - Industry Expert Channels",
	"Podcasts - Industry-specific shows",
}
