package schema

import (
	"regexp"
	"strings"
)

// Separator joins consecutive documents
const Separator = "\n\n"

var extendableTypes = []string{"Query", "Mutation", "Subscription"}

// declaration matches root declaration header of an extendable type, optionally preceded by extend keyword
var declaration = regexp.MustCompile(`(extend\s+)?type\s+(` + strings.Join(extendableTypes, "|") + `)\s+\{`)

// ExtendableTypes returns root type names that are merged by extension
func ExtendableTypes() []string {
	return append([]string{}, extendableTypes...)
}

// IsExtendable returns true if name is an extendable root type
func IsExtendable(name string) bool {
	for _, candidate := range extendableTypes {
		if candidate == name {
			return true
		}
	}
	return false
}

// Combine joins documents and rewrites repeated root declarations into extensions.
// It returns nil when there is no document.
func Combine(documents []string) *string {
	if len(documents) == 0 {
		return nil
	}
	result := Rewrite(strings.Join(documents, Separator))
	return &result
}

// Rewrite keeps the first declaration of each extendable type and turns every following one into
// "extend type <Name> {". The rewrite is lexical, matches in comments or string literals are rewritten too.
func Rewrite(text string) string {
	matches := declaration.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	seen := make(map[string]bool, len(extendableTypes))
	builder := strings.Builder{}
	builder.Grow(len(text) + len(matches)*len("extend "))
	offset := 0
	for _, match := range matches {
		name := text[match[4]:match[5]]
		if !seen[name] {
			seen[name] = true
			continue
		}
		builder.WriteString(text[offset:match[0]])
		builder.WriteString("extend type ")
		builder.WriteString(name)
		builder.WriteString(" {")
		offset = match[1]
	}
	builder.WriteString(text[offset:])
	return builder.String()
}
