// Package lazytable implements the self-initializing array engine.
//
// A Table stores values for arbitrary non-negative integer indexes. It is
// created in constant time, reads and writes in amortized constant time, and
// occupies space proportional to the number of distinct indexes actually
// written rather than to the largest index used.
//
// Three substructures cooperate:
//
//   - Index table: flat slice mapping logical index -> candidate slot.
//     Entries are untrusted until validated against the ownership table.
//   - Value store: append-only slice of stored values, addressed by slot.
//   - Ownership table: slice parallel to the value store recording which
//     logical index owns each slot. Validating an index-table entry means
//     checking that the candidate slot is in range and owned by that index.
//
// The table is not safe for concurrent use.
package lazytable
