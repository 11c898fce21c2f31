package ports

import "go.trai.ch/svgmake/internal/core/domain"

// RuleWriter serializes rules in the syntax of the external build tool.
type RuleWriter interface {
	// WriteRule writes the target declaration followed by its command lines.
	WriteRule(rule domain.Rule) error
}
