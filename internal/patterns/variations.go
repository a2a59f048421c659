// internal/patterns/variations.go
package patterns

// skillVariations maps canonical skill names to accepted synonyms and
// abbreviations. The matcher checks both directions, so "js" matches
// "javascript" and vice versa.
var skillVariations = map[string][]string{
	"javascript":              {"js", "ecmascript"},
	"python":                  {"py"},
	"react":                   {"reactjs", "react.js"},
	"node.js":                 {"nodejs", "node"},
	"machine learning":        {"ml", "machine learning"},
	"artificial intelligence": {"ai", "artificial intelligence"},
	"data science":            {"datascience", "data science"},
	"devops":                  {"dev ops", "development operations"},
	"ci/cd":                   {"continuous integration", "continuous deployment"},
	"rest api":                {"rest", "api", "restful"},
	"graphql":                 {"graph ql", "graph-ql"},
}

// falseAddressTerms look like place names to a tagger but are actually
// technology terms or noise. Address extraction must never emit them.
var falseAddressTerms = []string{
	"ai", "ml", "ananta", "express.js", "node.js", "react", "next.js", "postgresql",
}
