package skills

// aliasTable maps lowercase skill variants to their canonical spelling.
// Every canonical value must also be reachable from its own lowercase form
// so that Normalize stays idempotent.
var aliasTable = map[string]string{
	// Languages
	"python":      "Python",
	"py":          "Python",
	"python3":     "Python",
	"java":        "Java",
	"javascript":  "JavaScript",
	"java script": "JavaScript",
	"js":          "JavaScript",
	"ecmascript":  "JavaScript",
	"typescript":  "TypeScript",
	"type script": "TypeScript",
	"ts":          "TypeScript",
	"go":          "Go",
	"golang":      "Go",
	"c#":          "C#",
	"csharp":      "C#",
	"c sharp":     "C#",
	"c++":         "C++",
	"cpp":         "C++",
	"ruby":        "Ruby",
	"php":         "PHP",
	"kotlin":      "Kotlin",
	"swift":       "Swift",
	"rust":        "Rust",
	"scala":       "Scala",
	"r":           "R",
	"objective-c": "Objective-C",
	"objc":        "Objective-C",

	// Frontend frameworks
	"react":     "React",
	"reactjs":   "React",
	"react.js":  "React",
	"react js":  "React",
	"vue":       "Vue.js",
	"vuejs":     "Vue.js",
	"vue.js":    "Vue.js",
	"vue js":    "Vue.js",
	"angular":   "Angular",
	"angularjs": "Angular",
	"next":      "Next.js",
	"nextjs":    "Next.js",
	"next.js":   "Next.js",
	"nuxt":      "Nuxt.js",
	"nuxtjs":    "Nuxt.js",
	"nuxt.js":   "Nuxt.js",
	"svelte":    "Svelte",
	"jquery":    "jQuery",
	"html":      "HTML",
	"html5":     "HTML",
	"css":       "CSS",
	"css3":      "CSS",
	"sass":      "Sass",
	"scss":      "Sass",
	"tailwind":  "Tailwind CSS",
	"tailwindcss": "Tailwind CSS",
	"tailwind css": "Tailwind CSS",

	// Backend frameworks
	"node":        "Node.js",
	"nodejs":      "Node.js",
	"node.js":     "Node.js",
	"node js":     "Node.js",
	"express":     "Express",
	"expressjs":   "Express",
	"express.js":  "Express",
	"nest":        "NestJS",
	"nestjs":      "NestJS",
	"nest.js":     "NestJS",
	"spring":      "Spring",
	"spring boot": "Spring Boot",
	"springboot":  "Spring Boot",
	"spring-boot": "Spring Boot",
	"django":      "Django",
	"flask":       "Flask",
	"fastapi":     "FastAPI",
	"fast api":    "FastAPI",
	"rails":       "Ruby on Rails",
	"ruby on rails": "Ruby on Rails",
	"ror":         "Ruby on Rails",
	"laravel":     "Laravel",
	"gin":         "Gin",
	"fiber":       "Fiber",
	".net":        ".NET",
	"dotnet":      ".NET",
	"dot net":     ".NET",
	"asp.net":     "ASP.NET",
	"aspnet":      "ASP.NET",

	// Databases
	"postgres":      "PostgreSQL",
	"postgresql":    "PostgreSQL",
	"postgre":       "PostgreSQL",
	"pgsql":         "PostgreSQL",
	"mysql":         "MySQL",
	"mariadb":       "MariaDB",
	"mongo":         "MongoDB",
	"mongodb":       "MongoDB",
	"mongo db":      "MongoDB",
	"redis":         "Redis",
	"elasticsearch": "Elasticsearch",
	"elastic search": "Elasticsearch",
	"es":            "Elasticsearch",
	"oracle":        "Oracle",
	"oracle db":     "Oracle",
	"mssql":         "SQL Server",
	"sql server":    "SQL Server",
	"sqlserver":     "SQL Server",
	"sqlite":        "SQLite",
	"dynamodb":      "DynamoDB",
	"dynamo db":     "DynamoDB",
	"dynamo":        "DynamoDB",
	"cassandra":     "Cassandra",
	"couchbase":     "Couchbase",
	"neo4j":         "Neo4j",
	"sql":           "SQL",
	"nosql":         "NoSQL",

	// Cloud / DevOps
	"aws":                  "AWS",
	"amazon web services":  "AWS",
	"gcp":                  "GCP",
	"google cloud":         "GCP",
	"google cloud platform": "GCP",
	"azure":                "Azure",
	"microsoft azure":      "Azure",
	"k8s":                  "Kubernetes",
	"kubernetes":           "Kubernetes",
	"kube":                 "Kubernetes",
	"docker":               "Docker",
	"docker-compose":       "Docker Compose",
	"docker compose":       "Docker Compose",
	"terraform":            "Terraform",
	"ansible":              "Ansible",
	"jenkins":              "Jenkins",
	"ci/cd":                "CI/CD",
	"cicd":                 "CI/CD",
	"ci cd":                "CI/CD",
	"github actions":       "GitHub Actions",
	"gitlab ci":            "GitLab CI",
	"helm":                 "Helm",
	"prometheus":           "Prometheus",
	"grafana":              "Grafana",
	"nginx":                "Nginx",
	"linux":                "Linux",
	"git":                  "Git",
	"lambda":               "AWS Lambda",
	"aws lambda":           "AWS Lambda",
	"ec2":                  "EC2",
	"s3":                   "S3",
	"cloudformation":       "CloudFormation",

	// Messaging / streaming
	"kafka":        "Kafka",
	"apache kafka": "Kafka",
	"rabbitmq":     "RabbitMQ",
	"rabbit mq":    "RabbitMQ",
	"sqs":          "SQS",
	"sns":          "SNS",
	"activemq":     "ActiveMQ",
	"nats":         "NATS",
	"mqtt":         "MQTT",

	// Data / ML
	"spark":        "Apache Spark",
	"apache spark": "Apache Spark",
	"hadoop":       "Hadoop",
	"airflow":      "Airflow",
	"pandas":       "Pandas",
	"numpy":        "NumPy",
	"tensorflow":   "TensorFlow",
	"tensor flow":  "TensorFlow",
	"pytorch":      "PyTorch",
	"scikit-learn": "scikit-learn",
	"sklearn":      "scikit-learn",
	"ml":           "Machine Learning",
	"machine learning": "Machine Learning",
	"dl":           "Deep Learning",
	"deep learning": "Deep Learning",
	"nlp":          "NLP",

	// Protocols / interfaces
	"rest":        "REST",
	"rest api":    "REST",
	"restful":     "REST",
	"restful api": "REST",
	"graphql":     "GraphQL",
	"graph ql":    "GraphQL",
	"grpc":        "gRPC",
	"g-rpc":       "gRPC",
	"websocket":   "WebSocket",
	"web socket":  "WebSocket",
	"websockets":  "WebSocket",
	"oauth":       "OAuth",
	"oauth2":      "OAuth",
	"jwt":         "JWT",
	"soap":        "SOAP",
}

// canonicalSet is derived from aliasTable values at init time. Lookup keys
// are the canonical spellings themselves, so already-normalized input passes
// through unchanged.
var canonicalSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(aliasTable))
	for _, canonical := range aliasTable {
		set[canonical] = struct{}{}
	}
	return set
}()
