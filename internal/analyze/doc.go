// Package analyze builds the resolved type table of an F Prime dictionary.
//
// Raw type definitions carry nested type information inline. The Resolver
// reduces every nested reference to a plain qualified name, passing string
// references through an Interner that gives each (name, size) pair a stable
// synthetic native type such as "string40". Once channels and commands have
// been interned as well, Interner.Materialize closes the table so that every
// reference made by the dictionary names a table entry.
//
// Key types:
//   - TypeTable: qualified name -> TypeDescriptor, with declaration order kept
//   - TypeDescriptor: one of native / enum / struct / array
//   - Interner: synthetic string-type registry, one per run
//
// ContainsArray answers whether a type transitively holds an array, which
// decides whether a command argument can be expressed in the target schema.
package analyze
