// internal/patterns/skills.go
package patterns

// skillKeywords is the recognizable skill vocabulary, extended for
// industrial use. All entries are lowercase.
var skillKeywords = []string{
	// Programming Languages
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "swift", "kotlin",
	"php", "ruby", "scala", "r", "matlab", "perl", "bash", "powershell",

	// Web Technologies
	"html", "css", "sass", "scss", "react", "angular", "vue", "next.js", "nuxt.js",
	"node.js", "express.js", "django", "flask", "fastapi", "spring", "laravel", "symfony",
	"rails", "asp.net", "jquery", "bootstrap", "tailwind", "webpack", "vite",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "sql server",
	"mariadb", "cassandra", "elasticsearch", "dynamodb", "firebase",

	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github",
	"gitlab", "bitbucket", "terraform", "ansible", "chef", "puppet", "vagrant",
	"nginx", "apache", "traefik", "istio", "helm", "prometheus", "grafana",

	// AI/ML/Data Science
	"machine learning", "ml", "ai", "data science", "deep learning", "nlp",
	"tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy",
	"matplotlib", "seaborn", "plotly", "opencv", "spacy", "nltk", "gensim",
	"hugging face", "transformers", "bert", "gpt", "llm", "computer vision",
	"natural language processing", "neural networks", "statistics",

	// Big Data
	"hadoop", "spark", "kafka", "flink", "storm", "hive", "pig", "sqoop",
	"flume", "zookeeper", "hbase", "impala", "presto", "airflow", "luigi",

	// Mobile Development
	"android", "ios", "react native", "flutter", "xamarin", "ionic",
	"cordova", "phonegap", "swiftui", "kotlin multiplatform",

	// Testing & Quality
	"junit", "pytest", "selenium", "cypress", "jest", "mocha", "chai",
	"sonarqube", "codecov", "gitlab ci", "github actions",
	"travis ci", "circleci", "teamcity", "bamboo",

	// Methodologies
	"agile", "scrum", "kanban", "lean", "devops", "ci/cd", "tdd", "bdd",
	"waterfall", "spiral", "v-model", "extreme programming",

	// Tools & Platforms
	"jira", "confluence", "slack", "teams", "zoom", "figma", "sketch",
	"adobe xd", "invision", "postman", "swagger", "graphql", "rest",
	"soap", "microservices", "api", "websocket", "grpc", "thrift",

	// Security
	"oauth", "jwt", "ssl", "tls", "encryption", "authentication",
	"authorization", "penetration testing", "vulnerability assessment",
	"siem", "ids", "ips", "firewall", "vpn", "mfa", "2fa",

	// Business Intelligence
	"tableau", "power bi", "qlik", "looker", "metabase", "superset",
	"etl", "elt", "data warehouse", "data lake", "data pipeline",
	"business intelligence", "analytics", "reporting", "dashboard",
}
