// Package plan provides the resolution pipeline that produces the
// ResolvedDictionary consumed by schema translation.
//
// Resolution pipeline:
//  1. Strip the deployment prefix from dictionary and packet names (optional)
//  2. Resolve type definitions into a TypeTable, interning string types
//  3. Extract channels (name -> type) and commands (opcode + ordered args)
//  4. Materialize interned native types, closing the table
//  5. Build the packet catalog from the packets document
//  6. Report references to names the table does not define
package plan
