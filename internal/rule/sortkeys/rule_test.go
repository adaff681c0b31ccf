package sortkeys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keysort/keysort/internal/config"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		cfg      func(*config.Rule)
		content  string
		wantMsgs []string
	}{
		{
			name:    "sorted_reports_nothing",
			content: `const x = { a: 1, b: 2, c: 3 };`,
		},
		{
			name:     "one_out_of_order_pair",
			content:  `const x = { b: 1, a: 2 };`,
			wantMsgs: []string{"Expected object keys to be in ascending order. 'a' should be before 'b'."},
		},
		{
			name: "min_keys_exempt",
			cfg:  func(c *config.Rule) { c.MinKeys = 3 },
			content: `const x = { b: 1, a: 2 };`,
		},
		{
			name:    "spread_resets_tracking",
			content: `const x = { b: 1, ...rest, a: 2 };`,
		},
		{
			name:     "constraint_spans_dynamic_key",
			content:  `const x = { c: 1, [k]: 2, a: 3 };`,
			wantMsgs: []string{"Expected object keys to be in ascending order. 'a' should be before 'c'."},
		},
		{
			name:    "case_insensitive_pair_ok",
			cfg:     func(c *config.Rule) { c.CaseSensitive = false },
			content: `const x = { a: 1, B: 2 };`,
		},
		{
			name:     "case_sensitive_upper_after_lower",
			content:  `const x = { a: 1, B: 2 };`,
			wantMsgs: []string{"Expected object keys to be in ascending order. 'B' should be before 'a'."},
		},
		{
			name:    "natural_order_ok",
			cfg:     func(c *config.Rule) { c.Natural = true },
			content: `const x = { item2: 1, item10: 2 };`,
		},
		{
			name:     "lexicographic_flags_digit_runs",
			content:  `const x = { item2: 1, item10: 2 };`,
			wantMsgs: []string{"Expected object keys to be in ascending order. 'item10' should be before 'item2'."},
		},
		{
			name:     "descending",
			cfg:      func(c *config.Rule) { c.Order = config.Desc },
			content:  `const x = { a: 1, b: 2 };`,
			wantMsgs: []string{"Expected object keys to be in descending order. 'b' should be before 'a'."},
		},
		{
			name: "natural_insensitive_descending_message",
			cfg: func(c *config.Rule) {
				c.Order = config.Desc
				c.CaseSensitive = false
				c.Natural = true
			},
			content:  `const x = { a: 1, b: 2 };`,
			wantMsgs: []string{"Expected object keys to be in natural insensitive descending order. 'b' should be before 'a'."},
		},
		{
			name:    "destructuring_pattern_exempt",
			content: `const { b, a } = x;`,
		},
		{
			name:     "shorthand_properties",
			content:  `const x = { b, a };`,
			wantMsgs: []string{"Expected object keys to be in ascending order. 'a' should be before 'b'."},
		},
		{
			name:     "methods",
			content:  `const x = { stop() {}, run() {} };`,
			wantMsgs: []string{"Expected object keys to be in ascending order. 'run' should be before 'stop'."},
		},
		{
			name: "nested_objects_checked_independently",
			content: `const x = {
  a: { d: 1, c: 2 },
  b: 3,
};`,
			wantMsgs: []string{"Expected object keys to be in ascending order. 'c' should be before 'd'."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if tt.cfg != nil {
				tt.cfg(&cfg)
			}
			src, root := parseSource(t, tt.content)

			vs := New(cfg).Check(src, root)
			var msgs []string
			for _, v := range vs {
				msgs = append(msgs, v.Message)
			}
			assert.Equal(t, tt.wantMsgs, msgs)
		})
	}
}

func TestCheckAnchorsLaterEntry(t *testing.T) {
	content := `const x = { b: 1, a: 2 };`
	src, root := parseSource(t, content)

	vs := New(config.Default()).Check(src, root)
	require.Len(t, vs, 1)
	assert.Equal(t, uint32(strings.Index(content, "a: 2")), vs[0].Start)
	assert.Equal(t, uint32(1), vs[0].Line)
}

func TestCheckOneFixPerContainer(t *testing.T) {
	src, root := parseSource(t, `const x = { c: 1, b: 2, a: 3 };`)

	vs := New(config.Default()).Check(src, root)
	require.Len(t, vs, 2)
	assert.NotEmpty(t, vs[0].Fix, "first violation carries the container fix")
	assert.Empty(t, vs[1].Fix, "second violation in the same container must not duplicate the edit set")
}
