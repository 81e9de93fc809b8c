// Package vocabulary holds the fixed skill-keyword data used for keyword
// detection in job text. The data is read-only; callers must not mutate it.
package vocabulary

// SkillKeywords is the known technology/skill term list, all lowercase.
// The list is matched by substring containment, so single-letter entries
// are deliberately absent (they would match virtually any text). A few
// terms appear more than once; detection deduplicates, so the repeats are
// harmless.
var SkillKeywords = []string{
	"javascript", "typescript", "react", "angular", "vue", "node", "node.js", "python", "java", "c#",
	"aws", "azure", "docker", "kubernetes", "sql", "mongodb", "redis", "machine learning",
	"ai", "data science", "devops", "cybersecurity", "product management", "ui/ux", "html", "css",
	"sass", "less", "go", "ruby", "php", "swift", "objective-c", "scala", "spring", "django", "flask",
	"graphql", "rest", "api", "microservices", "jenkins", "terraform", "ansible", "linux", "git",
	"firebase", "postgresql", "mysql", "nosql", "pandas", "numpy", "scikit", "tensorflow", "pytorch",
	"docker", "k8s", "sre", "qa", "testing", "automation", "selenium", "jira", "figma", "sketch",
	"adobe", "photoshop", "illustrator", "tableau", "powerbi", "excel", "matlab", "c++",
	"bash", "shell", "unix", "cloud", "blockchain", "solidity", "web3", "firebase", "redux",
	"mobx", "webpack", "babel", "eslint", "prettier", "storybook", "jest", "mocha", "chai", "cypress",
	"puppeteer", "playwright", "express", "fastify", "hapi", "koa", "nestjs", "next.js", "nuxt", "svelte",
	"ember", "backbone", "d3", "three.js", "chart.js", "highcharts", "mapbox", "leaflet", "unity", "unreal",
	"gamedev", "vr", "ar", "iot", "embedded", "hardware", "network", "security", "infosec", "pentest",
	"incident response", "compliance", "gdpr", "hipaa", "pci", "risk", "governance", "agile", "scrum",
	"kanban", "product owner", "product manager", "business analyst", "crm", "salesforce", "hubspot",
	"marketing", "seo", "sem", "content", "copywriting", "analytics", "big data", "etl", "data pipeline",
	"data warehouse", "hadoop", "spark", "hive", "pig", "kafka", "rabbitmq", "elasticsearch", "splunk",
	"grafana", "prometheus", "monitoring", "logging", "observability", "ci/cd", "integration", "deployment",
	"serverless", "faas", "paas", "saas", "iaas", "crm", "erp", "sap", "oracle", "peoplesoft", "workday",
	"netsuite", "quickbooks", "xero", "zoho", "freshbooks", "wave", "sage", "intacct", "adp", "paychex",
	"gusto", "bamboohr", "namely", "zenefits", "trinet", "justworks", "rippling", "greenhouse", "lever",
	"icims", "jobvite", "smartrecruiters", "workable", "breezy", "jazzhr", "recruiterbox", "bullhorn",
	"ceipal", "crelate", "avionte", "jobadder", "recruitee", "manatal", "vinch", "hiretual", "seekout",
	"gem", "beamery", "eightfold", "hireez", "entelo", "x0pa", "talentsoft", "icims", "jobvite", "greenhouse",
}

// Synonyms maps a canonical term to known abbreviations and aliases. The
// map augments substring matching for abbreviations that substring checks
// cannot catch (e.g. "ml" for "machine learning").
var Synonyms = map[string][]string{
	"javascript":         {"js", "es6", "es2015"},
	"typescript":         {"ts"},
	"react":              {"reactjs", "react.js"},
	"node.js":            {"nodejs", "node"},
	"python":             {"py"},
	"aws":                {"amazon web services"},
	"docker":             {"containerization"},
	"kubernetes":         {"k8s"},
	"machine learning":   {"ml", "artificial intelligence"},
	"data science":       {"data scientist"},
	"product management": {"pm", "product manager"},
	"ui/ux":              {"ux", "ui", "user experience", "user interface"},
	"devops":             {"sre", "site reliability"},
	"cybersecurity":      {"infosec", "information security"},
}

// Related reports whether two lowercased terms are linked through the
// synonym map, in either direction.
func Related(a, b string) bool {
	for canonical, aliases := range Synonyms {
		for _, alias := range aliases {
			if alias == a && b == canonical {
				return true
			}
			if alias == b && a == canonical {
				return true
			}
		}
	}
	return false
}
