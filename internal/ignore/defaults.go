package ignore

// DefaultPatterns are always merged into the rule set at every directory
// level: build artifacts, VCS metadata, OS and editor cruft, logs and temp
// files. Dotfiles are filtered by the walker before rules are consulted, so
// none are needed here.
var DefaultPatterns = []string{
	"node_modules",
	"dist",
	"build",
	"out",
	"target",
	"coverage",
	"__pycache__",
	"*.pyc",
	"*.log",
	"*.tmp",
	"tmp",
	"temp",
	"Thumbs.db",
}

// DefaultRules returns the compiled form of DefaultPatterns.
func DefaultRules() []Rule {
	return CompileLines(DefaultPatterns)
}
