package sortkeys

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/keysort/keysort/internal/lint"
)

// extractName resolves the statically known key of a property-like node.
// The second return is false when the key is dynamic: a computed expression,
// or a template with substitutions. Dynamic keys are excluded from ordering.
func extractName(n *sitter.Node, src *lint.Source) (string, bool) {
	switch n.Type() {
	case "pair":
		if key := n.ChildByFieldName("key"); key != nil {
			return keyName(key, src)
		}
	case "shorthand_property_identifier":
		return src.NodeText(n), true
	case "method_definition":
		if name := n.ChildByFieldName("name"); name != nil {
			return keyName(name, src)
		}
	}
	return "", false
}

func keyName(key *sitter.Node, src *lint.Source) (string, bool) {
	switch key.Type() {
	case "property_identifier", "identifier", "private_property_identifier":
		return src.NodeText(key), true
	case "string":
		return strings.Trim(src.NodeText(key), `"'`), true
	case "number":
		return src.NodeText(key), true
	case "template_string":
		return templateName(key, src)
	case "computed_property_name":
		// [x] resolves only when x is itself a literal
		for i := 0; i < int(key.ChildCount()); i++ {
			child := key.Child(i)
			switch child.Type() {
			case "[", "]", "comment":
				continue
			case "string", "number", "template_string":
				return keyName(child, src)
			default:
				return "", false
			}
		}
	}
	return "", false
}

// templateName returns the cooked text of a template key with no
// interpolation, e.g. `name`. Substituted templates are dynamic.
func templateName(t *sitter.Node, src *lint.Source) (string, bool) {
	for i := 0; i < int(t.ChildCount()); i++ {
		if t.Child(i).Type() == "template_substitution" {
			return "", false
		}
	}
	return strings.Trim(src.NodeText(t), "`"), true
}
