package domain

// Names of the aggregate rules.
const (
	TargetAll     = "all"
	TargetClean   = "clean"
	TargetPackage = "package"
	TargetRelease = "release"
)

// Rule is a single build rule in the generated script.
type Rule struct {
	// Target is an output path or a symbolic name.
	Target string
	// Prerequisites are the paths or targets the rule depends on.
	Prerequisites []string
	// Phony marks a rule that is always out of date.
	Phony bool
	// Commands are the shell command lines, in execution order.
	Commands []string
}
