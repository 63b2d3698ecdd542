package intern

import (
	"slices"
	"strings"
)

// String is an interned, case-insensitive name.
//
// Two Strings are equal iff their lower-case forms are identical. The original
// casing is kept for display only. Use Equal rather than == : two Strings that
// differ only in casing are Equal but not ==.
//
// The zero value is the empty name.
type String struct {
	original string
	e        *entry
}

// Key is a comparable map key for a String.
//
// Keys are only comparable between Strings interned through the same Table.
type Key struct {
	e *entry
}

// IsEmpty reports whether s is the empty name.
func (s String) IsEmpty() bool {
	return s.e == nil
}

// String returns the original-case text, or "" for the empty name.
func (s String) String() string {
	return s.original
}

// Lower returns the lower-case form, or "" for the empty name.
func (s String) Lower() string {
	if s.e == nil {
		return ""
	}
	return s.e.lower
}

// Hash returns a hash of the lower-case form. Equal Strings hash equally;
// the empty name hashes to 0.
func (s String) Hash() uint64 {
	if s.e == nil {
		return 0
	}
	return s.e.hash
}

// Key returns the map key for s.
func (s String) Key() Key {
	return Key{e: s.e}
}

// Equal reports whether s and other name the same thing, ignoring case.
func (s String) Equal(other String) bool {
	return Equal(s, other)
}

// Compare orders s against other by lower-case form.
func (s String) Compare(other String) int {
	return Compare(s, other)
}

// Equal reports whether a and b are both empty or have identical lower-case
// forms. Strings from the same Table compare by entry pointer only.
func Equal(a, b String) bool {
	if a.e == b.e {
		return true
	}
	if a.e == nil || b.e == nil {
		return false
	}
	return a.e.hash == b.e.hash && a.e.lower == b.e.lower
}

// Compare returns -1, 0 or +1 comparing the lower-case forms of a and b
// lexicographically. The empty name sorts first.
func Compare(a, b String) int {
	if a.e == b.e {
		return 0
	}
	return strings.Compare(a.Lower(), b.Lower())
}

// Sort orders names alphabetically, ignoring case.
func Sort(names []String) {
	slices.SortStableFunc(names, Compare)
}
