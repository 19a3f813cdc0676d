// Package registry turns the raw columns emitted by discovery into the final
// ordered column list.
//
// # Pipeline
//
//  1. collect: the last write for a key wins, at the key's first position
//  2. suppress: drop columns whose data a preferred sibling already carries
//  3. classify: read-only rules run over the survivors only
//  4. sort: total order the picker's "Main Fields" and per-parent groups rely on
//  5. dedup: a final pass removes any repeated key
//
// # Sort order
//
//  1. id
//  2. name
//  3. the entity's primary fields, in their configured order
//  4. non-nested before nested
//  5. email, then phone groups, before other nested groups
//  6. nested columns grouped by ParentKey (lexicographic)
//  7. display name, then key
package registry
