// Package gen translates a resolved F Prime dictionary into the ordered
// entity sequence of a YAMCS mission database.
//
// Translation runs in two passes over the type table:
//   - Pass 1 emits leaf kinds: native scalars (including the synthetic
//     string types), then the enums represented by them.
//   - Pass 2 emits composites: structs and arrays, ordered so that a
//     composite follows every composite it references.
//
// Packets and commands are emitted last. Array-typed channels become
// repeated packet fields; commands with an argument that contains an array
// anywhere in its type are left out and reported.
package gen
