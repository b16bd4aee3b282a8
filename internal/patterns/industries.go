package patterns

// IndustryProfile describes the keyword signature of one industry. The three
// tiers carry different weights in the template recommender: job titles are
// the strongest signal, then primary keywords, then contextual vocabulary.
type IndustryProfile struct {
	Name       string
	Keywords   []string
	Contextual []string
	JobTitles  []string
}

// Industries are the three supported industry profiles, all lowercase.
var Industries = []IndustryProfile{
	{
		Name: "technology",
		Keywords: []string{
			"software", "engineer", "developer", "programming", "cloud",
			"api", "agile", "devops", "machine learning", "data",
			"javascript", "python", "java", "react", "aws", "docker",
			"kubernetes", "microservices", "database", "backend",
			"frontend", "full stack", "git", "linux",
		},
		Contextual: []string{
			"scalable", "deployment", "architecture", "open source",
			"sprint", "distributed", "infrastructure", "ci/cd",
			"code review", "latency", "observability", "refactoring",
		},
		JobTitles: []string{
			"software engineer", "software developer", "web developer",
			"data scientist", "data engineer", "devops engineer",
			"site reliability engineer", "systems architect",
			"qa engineer", "engineering manager",
		},
	},
	{
		Name: "finance",
		Keywords: []string{
			"financial", "banking", "investment", "portfolio", "trading",
			"accounting", "audit", "risk", "compliance", "equity",
			"asset", "capital", "budget", "forecast", "tax", "wealth",
			"securities", "credit", "derivatives", "treasury",
			"valuation", "brokerage", "lending", "underwriting",
		},
		Contextual: []string{
			"regulatory", "fiscal", "liquidity", "reconciliation",
			"gaap", "ifrs", "due diligence", "quarterly", "hedge",
			"amortization", "basel", "sox",
		},
		JobTitles: []string{
			"financial analyst", "investment banker", "portfolio manager",
			"accountant", "auditor", "risk manager", "controller",
			"financial advisor", "credit analyst", "treasury analyst",
		},
	},
	{
		Name: "healthcare",
		Keywords: []string{
			"patient", "clinical", "medical", "healthcare", "nursing",
			"hospital", "treatment", "diagnosis", "pharmacy", "therapy",
			"physician", "health", "surgical", "emergency", "laboratory",
			"radiology", "oncology", "cardiology", "pediatric",
			"rehabilitation", "immunization", "vitals", "medication",
			"charting",
		},
		Contextual: []string{
			"hipaa", "ehr", "emr", "triage", "bedside", "acute",
			"outpatient", "inpatient", "telehealth", "care plan",
			"discharge", "epic",
		},
		JobTitles: []string{
			"registered nurse", "nurse practitioner", "physician assistant",
			"medical assistant", "clinical coordinator",
			"healthcare administrator", "lab technician",
			"physical therapist", "pharmacist", "medical director",
		},
	},
}

// TechSkills2025 is the in-demand technology skill list used for the tech
// industry cross-check bonus. Kept separate from the industry profiles so the
// list can be refreshed yearly without touching match percentages.
var TechSkills2025 = []string{
	"python", "typescript", "rust", "golang", "kubernetes", "terraform",
	"react", "next.js", "graphql", "aws", "azure", "gcp", "docker",
	"pytorch", "tensorflow", "llm", "prompt engineering", "rag",
	"vector database", "ci/cd", "observability", "snowflake", "kafka",
	"spark", "fastapi", "node.js", "swift", "flutter", "webassembly",
	"edge computing",
}
