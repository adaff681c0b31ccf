package sortkeys

import (
	"strings"

	"github.com/keysort/keysort/internal/config"
)

// Comparator decides relative key order for one rule configuration. It covers
// the eight variants of {asc, desc} x {sensitive, insensitive} x
// {lexicographic, natural}; descending is ascending with swapped arguments.
type Comparator struct {
	desc        bool
	insensitive bool
	natural     bool
}

// NewComparator builds the comparator for cfg.
func NewComparator(cfg config.Rule) *Comparator {
	return &Comparator{
		desc:        cfg.Order == config.Desc,
		insensitive: !cfg.CaseSensitive,
		natural:     cfg.Natural,
	}
}

// Valid reports whether b may legally follow a. Equal names (after case
// folding in insensitive mode) are always valid, so case-only duplicates
// never trigger a report.
func (c *Comparator) Valid(a, b string) bool {
	if c.desc {
		a, b = b, a
	}
	return c.compare(a, b) <= 0
}

// Less is the strict order used by the stable sort; ties keep input order.
func (c *Comparator) Less(a, b string) bool {
	if c.desc {
		a, b = b, a
	}
	return c.compare(a, b) < 0
}

func (c *Comparator) compare(a, b string) int {
	if c.insensitive {
		a, b = strings.ToLower(a), strings.ToLower(b)
	}
	if c.natural {
		return naturalCompare(a, b)
	}
	return strings.Compare(a, b)
}

// naturalCompare orders embedded digit runs by numeric magnitude instead of
// byte value, so "item2" sorts before "item10".
func naturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			ia, jb := i, j
			for ia < len(a) && isDigit(a[ia]) {
				ia++
			}
			for jb < len(b) && isDigit(b[jb]) {
				jb++
			}
			da := strings.TrimLeft(a[i:ia], "0")
			db := strings.TrimLeft(b[j:jb], "0")
			if len(da) != len(db) {
				return len(da) - len(db)
			}
			if da != db {
				return strings.Compare(da, db)
			}
			i, j = ia, jb
			continue
		}
		if ca != cb {
			return int(ca) - int(cb)
		}
		i++
		j++
	}
	return (len(a) - i) - (len(b) - j)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
