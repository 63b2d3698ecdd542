package intern

import (
	"runtime"
	"sync"
	"weak"

	"github.com/cespare/xxhash/v2"
)

// entry is the shared storage slot for one lower-case name.
type entry struct {
	lower string
	hash  uint64
}

// Table deduplicates lower-case names.
//
// Entries are held through weak pointers: once every String referring to an
// entry is gone, the garbage collector reclaims it and the table drops the
// slot. Interning the same name again afterwards simply creates a new entry.
//
// All methods are thread-safe.
type Table struct {
	mu      sync.Mutex
	entries map[string]weak.Pointer[entry]
	self    weak.Pointer[Table]
}

// NewTable creates an empty intern table.
func NewTable() *Table {
	t := &Table{
		entries: make(map[string]weak.Pointer[entry]),
	}
	t.self = weak.Make(t)
	return t
}

var defaultTable = NewTable()

// Default returns the process-wide table used by Make.
func Default() *Table {
	return defaultTable
}

// Make interns text in the default table.
func Make(text string) String {
	return defaultTable.Intern(text)
}

// FromPtr interns *text in the default table. A nil pointer yields the empty
// String, the same value as Make("").
func FromPtr(text *string) String {
	if text == nil {
		return String{}
	}
	return defaultTable.Intern(*text)
}

// Intern returns the interned form of text.
//
// Empty text returns the zero String without folding or allocating.
// Intern never fails.
func (t *Table) Intern(text string) String {
	if text == "" {
		return String{}
	}
	return String{original: text, e: t.slot(fold(text))}
}

// Len returns the number of live entries in the table.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, wp := range t.entries {
		if wp.Value() != nil {
			n++
		}
	}
	return n
}

// evictArg identifies the table slot a reclaimed entry occupied. The table
// is held weakly so pending cleanups do not keep it alive.
type evictArg struct {
	table weak.Pointer[Table]
	lower string
	ref   weak.Pointer[entry]
}

func (t *Table) slot(lower string) *entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	if wp, ok := t.entries[lower]; ok {
		if e := wp.Value(); e != nil {
			return e
		}
	}

	e := &entry{lower: lower, hash: xxhash.Sum64String(lower)}
	wp := weak.Make(e)
	t.entries[lower] = wp
	runtime.AddCleanup(e, evict, evictArg{table: t.self, lower: lower, ref: wp})
	return e
}

// evict removes a reclaimed slot unless its table is gone or the slot has
// already been replaced by a newer entry for the same name.
func evict(arg evictArg) {
	t := arg.table.Value()
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if cur, ok := t.entries[arg.lower]; ok && cur == arg.ref {
		delete(t.entries, arg.lower)
	}
}
