// Package tips holds the month-to-tip table and loads it from a tips file.
package tips

import "slices"

// Source records where a Table came from.
type Source string

const (
	SourceFile     Source = "file"
	SourceFallback Source = "built-in"
)

// Table maps a month (1-12) to a gardening tip. It is read-only once built.
type Table struct {
	entries map[int]string
	source  Source
	path    string
}

// NewTable builds a Table from a copy of entries.
func NewTable(entries map[int]string, source Source, path string) *Table {
	m := make(map[int]string, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &Table{entries: m, source: source, path: path}
}

// Get returns the tip for month, if the table has one.
func (t *Table) Get(month int) (string, bool) {
	tip, ok := t.entries[month]
	return tip, ok
}

// Len returns the number of months covered.
func (t *Table) Len() int {
	return len(t.entries)
}

// Months returns the covered months in ascending order.
func (t *Table) Months() []int {
	months := make([]int, 0, len(t.entries))
	for m := range t.entries {
		months = append(months, m)
	}
	slices.Sort(months)
	return months
}

// Source reports whether the table was read from a file or is the built-in set.
func (t *Table) Source() Source {
	return t.source
}

// Path is the file the table was read from. Empty for the built-in set.
func (t *Table) Path() string {
	return t.path
}

// fallbackTips is deliberately partial; months it lacks get a placeholder.
var fallbackTips = map[int]string{
	1:  "Plan your garden layout and order seeds early.",
	4:  "Sow hardy crops and prepare beds with compost.",
	7:  "Water deeply and mulch in warm weather.",
	10: "Plant spring bulbs and clear away spent crops.",
}

// Fallback returns the built-in table used when no tips file can be read.
func Fallback() *Table {
	return NewTable(fallbackTips, SourceFallback, "")
}

// Starter returns a full year of northern-hemisphere tips, written out by
// `sg init` as a starting tips file.
func Starter() map[int]string {
	return map[int]string{
		1:  "Protect sensitive plants from frost. Plan your spring garden layout.",
		2:  "Start seeds indoors for tomatoes, peppers. Prune dormant trees.",
		3:  "Plant cool-season crops: lettuce, spinach, peas. Prepare beds.",
		4:  "Sow carrots, beets, radishes. Plant perennials and shrubs.",
		5:  "Transplant seedlings outside. Mulch to retain moisture.",
		6:  "Harvest early crops. Water consistently during heat.",
		7:  "Deadhead flowers. Watch for pests in hot weather.",
		8:  "Harvest summer vegetables. Plant fall crops like kale.",
		9:  "Plant spring bulbs. Clean up garden debris.",
		10: "Divide perennials. Protect plants before first frost.",
		11: "Mulch beds for winter. Clean and store tools.",
		12: "Plan next year's garden. Order seeds early.",
	}
}
