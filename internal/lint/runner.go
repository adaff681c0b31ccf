package lint

import (
	"context"
	"fmt"
	"sort"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Rule checks one parsed file and reports violations. Implementations must be
// safe for concurrent use across files.
type Rule interface {
	Name() string
	Check(src *Source, root *sitter.Node) []Violation
}

// MaxFixPasses bounds the fix/re-lint loop. Each pass strictly reduces the
// number of out-of-order pairs, so the ceiling is a safety net, not a tuning
// knob.
const MaxFixPasses = 10

// Parser pool to avoid recreating parsers per file.
var parserPool = sync.Pool{
	New: func() interface{} {
		parser := sitter.NewParser()
		parser.SetLanguage(typescript.GetLanguage())
		return parser
	},
}

// Runner drives rules over file content: parse, check, and in fix mode apply
// non-overlapping edit sets until a fixed point.
type Runner struct {
	rules []Rule
}

// NewRunner creates a runner for the given rules.
func NewRunner(rules ...Rule) *Runner {
	return &Runner{rules: rules}
}

// Lint runs one pass over content and returns the violations found, sorted by
// position.
func (r *Runner) Lint(ctx context.Context, path string, content []byte) ([]Violation, error) {
	parser := parserPool.Get().(*sitter.Parser)
	defer parserPool.Put(parser)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	src := NewSource(content)
	var out []Violation
	for _, rule := range r.rules {
		for _, v := range rule.Check(src, tree.RootNode()) {
			v.Path = path
			v.Rule = rule.Name()
			out = append(out, v)
		}
	}
	SortViolations(out)
	return out, nil
}

// Fix applies fixes and re-lints until no fixable violation remains or the
// pass ceiling is hit. It returns the rewritten content, the violations still
// present in it, and the number of passes that changed the text.
func (r *Runner) Fix(ctx context.Context, path string, content []byte) ([]byte, []Violation, int, error) {
	cur := content
	for pass := 0; pass < MaxFixPasses; pass++ {
		violations, err := r.Lint(ctx, path, cur)
		if err != nil {
			return cur, nil, pass, err
		}
		next, applied := applyFixes(cur, violations)
		if applied == 0 {
			return cur, violations, pass, nil
		}
		cur = next
	}
	violations, err := r.Lint(ctx, path, cur)
	return cur, violations, MaxFixPasses, err
}

// applyFixes applies the position-sorted, mutually non-overlapping subset of
// the violations' fixes, greedily preferring earlier spans. Fixes skipped for
// overlap are picked up on a later pass.
func applyFixes(content []byte, violations []Violation) ([]byte, int) {
	var fixes []Fix
	for _, v := range violations {
		if len(v.Fix) > 0 {
			fixes = append(fixes, v.Fix)
		}
	}
	if len(fixes) == 0 {
		return content, 0
	}

	sort.SliceStable(fixes, func(i, j int) bool {
		si, _ := fixes[i].Span()
		sj, _ := fixes[j].Span()
		return si < sj
	})

	var accepted Fix
	appliedEnd := int64(-1)
	applied := 0
	for _, f := range fixes {
		start, end := f.Span()
		if int64(start) < appliedEnd {
			continue
		}
		accepted = append(accepted, f...)
		appliedEnd = int64(end)
		applied++
	}
	if applied == 0 {
		return content, 0
	}
	return accepted.Apply(content), applied
}
