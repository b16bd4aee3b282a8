package patterns

// SkillCategory is one bucket in the skill classification table.
type SkillCategory struct {
	Name     string
	Keywords []string
}

// SkillCategories is the ordered classification table for the skill grouper.
// Classification is first-category-wins, so order matters: a broad keyword in
// an early category shadows a more specific match later. This mirrors the
// shipped behavior and is documented as a known imprecision rather than fixed.
// Keywords are lowercase; bare one or two letter language names ("C", "R",
// "go") are omitted because the substring matcher cannot handle them safely.
// Symbol-bearing names like "c#" and "c++" stay: the symbol keeps them from
// matching inside unrelated words.
var SkillCategories = []SkillCategory{
	{"Programming Languages", []string{
		"python", "java", "javascript", "typescript", "c++", "c#", "ruby",
		"golang", "php", "swift", "kotlin", "rust", "scala", "perl",
		"objective-c", "dart", "elixir", "haskell", "matlab",
	}},
	{"Frameworks & Libraries", []string{
		"react", "angular", "vue", "svelte", "next.js", "nuxt", "django",
		"flask", "fastapi", "spring", "rails", "laravel", "express",
		"node.js", "nestjs", ".net", "pandas", "numpy",
	}},
	{"Databases", []string{
		"sql", "mysql", "postgresql", "postgres", "mongodb", "redis",
		"cassandra", "dynamodb", "sqlite", "oracle", "elasticsearch",
		"snowflake", "bigquery", "neo4j", "mariadb",
	}},
	{"Cloud & DevOps", []string{
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
		"terraform", "ansible", "jenkins", "ci/cd", "devops", "helm",
		"cloudformation", "serverless", "lambda", "openshift",
	}},
	{"Machine Learning & AI", []string{
		"machine learning", "deep learning", "tensorflow", "pytorch",
		"scikit-learn", "keras", "nlp", "computer vision", "neural network",
		"llm", "langchain", "hugging face", "reinforcement learning",
	}},
	{"Data Science & Analytics", []string{
		"data science", "data analysis", "data analytics", "statistics",
		"tableau", "power bi", "looker", "excel", "spark", "hadoop",
		"etl", "data pipeline", "data visualization", "a/b testing",
	}},
	{"Web Development", []string{
		"html", "css", "sass", "tailwind", "bootstrap", "rest", "graphql",
		"webpack", "vite", "responsive design", "web development", "seo",
	}},
	{"Mobile Development", []string{
		"ios", "android", "react native", "flutter", "xamarin", "swiftui",
		"mobile development", "app store", "play store",
	}},
	{"Testing & QA", []string{
		"testing", "selenium", "cypress", "jest", "junit", "pytest",
		"quality assurance", "test automation", "tdd", "unit test",
	}},
	{"Security", []string{
		"security", "penetration testing", "cryptography", "oauth",
		"encryption", "vulnerability", "compliance", "firewall", "siem",
		"iam",
	}},
	{"Tools & Platforms", []string{
		"git", "github", "gitlab", "jira", "confluence", "slack",
		"salesforce", "sap", "linux", "bash", "powershell", "kafka",
		"rabbitmq", "grafana", "prometheus",
	}},
	{"Project Management", []string{
		"project management", "agile", "scrum", "kanban", "waterfall",
		"pmp", "product management", "roadmap", "stakeholder management",
		"sprint planning", "six sigma",
	}},
	{"Design & UX", []string{
		"figma", "sketch", "adobe", "photoshop", "illustrator",
		"user experience", "user interface", "ux design", "ui design",
		"wireframe", "prototyping", "design system",
	}},
	{"Soft Skills", []string{
		"leadership", "communication", "teamwork", "problem solving",
		"collaboration", "time management", "critical thinking",
		"adaptability", "mentoring", "public speaking", "negotiation",
		"conflict resolution",
	}},
}

// TechnicalSkillKeywords and SoftSkillKeywords drive the balance check in the
// skills category: a competitive resume lists several of each.
var TechnicalSkillKeywords = []string{
	"python", "java", "javascript", "typescript", "sql", "aws", "azure",
	"docker", "kubernetes", "react", "angular", "node", "git", "linux",
	"api", "cloud", "database", "machine learning", "data", "devops",
	"terraform", "excel", "tableau", "salesforce",
}

var SoftSkillKeywords = []string{
	"leadership", "communication", "teamwork", "collaboration",
	"problem solving", "time management", "adaptability", "mentoring",
	"critical thinking", "negotiation", "presentation", "organization",
}

// VagueSkillPhrases are filler entries that weaken a skills section.
var VagueSkillPhrases = []string{
	"hard working", "hard-working", "team player", "go getter",
	"go-getter", "detail oriented", "detail-oriented", "self starter",
	"self-starter", "results driven", "results-driven", "fast learner",
	"think outside the box", "people person", "multitasking", "synergy",
}
