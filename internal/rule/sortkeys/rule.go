package sortkeys

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/keysort/keysort/internal/config"
	"github.com/keysort/keysort/internal/lint"
)

const messageTemplate = "Expected object keys to be in {natural}{insensitive}{order}ending order. '{thisName}' should be before '{prevName}'."

// Rule enforces configured key order inside object literals. Destructuring
// patterns share the syntactic shape but are a different node kind and are
// never visited.
type Rule struct {
	cfg config.Rule
	cmp *Comparator
}

// New builds the rule for a validated configuration.
func New(cfg config.Rule) *Rule {
	return &Rule{cfg: cfg, cmp: NewComparator(cfg)}
}

// Name returns the rule identifier.
func (r *Rule) Name() string {
	return "sort-keys"
}

// Check walks every object literal and reports each adjacent out-of-order
// pair, anchored at the later entry. The first violation in a container
// carries the container's whole fix; a per-container set keeps further
// reports in the same container from emitting a second, conflicting edit set.
func (r *Rule) Check(src *lint.Source, root *sitter.Node) []lint.Violation {
	var out []lint.Violation
	fixed := make(map[uint32]bool)

	w := lint.NewWalker()
	w.OnEnter("object", func(obj *sitter.Node) {
		segs, total := collect(obj, src)
		if total < r.cfg.MinKeys {
			return
		}

		for _, seg := range segs {
			prevName := ""
			havePrev := false
			for _, e := range seg.Entries {
				if !e.Known {
					// dynamic keys are skipped; the constraint spans over them
					continue
				}
				if havePrev && !r.cmp.Valid(prevName, e.Name) {
					v := r.violation(e, prevName)
					if !fixed[obj.StartByte()] {
						fixed[obj.StartByte()] = true
						v.Fix = r.buildFix(src, segs)
					}
					out = append(out, v)
				}
				prevName = e.Name
				havePrev = true
			}
		}
	})
	w.Walk(root)
	return out
}

func (r *Rule) violation(e *Entry, prevName string) lint.Violation {
	fields := map[string]string{
		"natural":     "",
		"insensitive": "",
		"order":       string(r.cfg.Order),
		"thisName":    e.Name,
		"prevName":    prevName,
	}
	if r.cfg.Natural {
		fields["natural"] = "natural "
	}
	if !r.cfg.CaseSensitive {
		fields["insensitive"] = "insensitive "
	}

	start := e.Node.StartPoint()
	return lint.Violation{
		Line:    start.Row + 1,
		Col:     start.Column + 1,
		Start:   e.Node.StartByte(),
		End:     e.Node.EndByte(),
		Message: lint.Interpolate(messageTemplate, fields),
	}
}
