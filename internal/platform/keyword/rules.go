package keyword

// DefaultResponse is returned when no rule matches a message.
const DefaultResponse = "Thanks for your message. I don't have a specific answer for that yet, " +
	"but I can talk about architecture, performance, databases, testing, concurrency, " +
	"deployment and security. Try asking about one of those."

// Rule maps a set of keywords to a canned response.
// Keywords must be lower case. A keyword matches when it starts a word of the
// message, so stems like "deploy" also cover "deployment".
type Rule struct {
	Name     string
	Keywords []string
	Response string
}

// DefaultRules returns the built-in rule set in evaluation order.
// Topic rules come before conversational ones so a greeting that also asks
// about a topic gets the topical answer.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "architecture",
			Keywords: []string{"architecture", "design pattern", "microservice", "monolith"},
			Response: "Good architecture starts with clear boundaries. Keep the domain model " +
				"independent of transport and storage, depend on interfaces at the edges, " +
				"and let each component own its data.",
		},
		{
			Name:     "performance",
			Keywords: []string{"performance", "latency", "slow", "optimi", "throughput"},
			Response: "For performance work, measure before changing anything. Profile the hot path, " +
				"look for unnecessary allocations and round trips, and cache only what the " +
				"profile says is expensive.",
		},
		{
			Name:     "database",
			Keywords: []string{"database", "sql", "query", "index", "postgres"},
			Response: "Database questions usually come down to access patterns. Index the columns " +
				"you filter on, keep transactions short, and check query plans before " +
				"denormalizing.",
		},
		{
			Name:     "testing",
			Keywords: []string{"testing", "test", "unit test", "coverage"},
			Response: "Testing pays off most at the boundaries. Table-driven unit tests for pure " +
				"logic, a few integration tests through the real transport, and deterministic " +
				"clocks and delays keep the suite fast.",
		},
		{
			Name:     "concurrency",
			Keywords: []string{"concurrency", "concurrent", "goroutine", "thread", "race condition", "data race", "async"},
			Response: "Concurrency is easiest to reason about when ownership is explicit. Guard " +
				"shared state with a single lock or confine it to one goroutine, and always " +
				"know how a background task stops.",
		},
		{
			Name:     "deployment",
			Keywords: []string{"deployment", "deploy", "docker", "kubernetes", "release"},
			Response: "For deployment, ship small immutable builds, expose health checks, " +
				"and make shutdown graceful so in-flight work is not lost on every release.",
		},
		{
			Name:     "security",
			Keywords: []string{"security", "secure", "authentication", "authorization", "password", "vulnerab"},
			Response: "On security, validate input at the edge, never log secrets or raw user " +
				"content, and keep error messages returned to clients generic.",
		},
		{
			Name:     "greeting",
			Keywords: []string{"hello", "hey there", "good morning", "good afternoon", "greetings"},
			Response: "Hello! Ask me about software architecture, performance, databases, " +
				"testing, concurrency, deployment or security.",
		},
		{
			Name:     "thanks",
			Keywords: []string{"thank", "appreciate", "cheers"},
			Response: "You're welcome! Let me know if there's anything else you'd like to explore.",
		},
		{
			Name:     "help",
			Keywords: []string{"help", "what can you do", "how does this work"},
			Response: "Send a message about a software engineering topic and poll the job until " +
				"it completes. I know about architecture, performance, databases, testing, " +
				"concurrency, deployment and security.",
		},
	}
}
