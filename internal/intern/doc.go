// Package intern provides case-insensitive interned names for Gray Logic Input.
//
// Control, template and processor names are compared on every lookup the
// input pipeline performs. Folding and comparing raw strings each time is too
// costly, so a name is folded to lower case once, when it is interned, and all
// later comparisons work on a shared table entry.
//
// # Key Types
//
//   - String: an interned name. Keeps the original casing for display; equality,
//     ordering and hashing only look at the lower-case form.
//   - Table: an owned intern table. Entries are weakly referenced and are
//     evicted once no String refers to them any more.
//   - Key: a comparable map key for a String interned through a given Table.
//
// # Usage
//
//	tbl := intern.NewTable()
//	a := tbl.Intern("LeftStick")
//	b := tbl.Intern("leftstick")
//	a.Equal(b)  // true
//	a.String()  // "LeftStick"
//
// The zero String is the empty name. Interning "" returns it without touching
// the table.
//
// # Thread Safety
//
// Table is safe for concurrent use; at most one live entry exists per distinct
// lower-case text. String values are immutable and can be shared freely.
package intern
