// Package discover finds every addressable column in one sample record.
//
// The walker is a pure function over a jsonval.Value: each call takes an
// Accumulator and returns the extended one, so nothing is shared between
// extractions and the walker can be tested on any subtree in isolation.
//
// # Traversal
//
// Depth-first, keys in the record's own order:
//   - scalars and null become a column immediately
//   - object keys starting with "_" and values with no JSON form are skipped
//   - arrays of scalars (and empty arrays) are opaque single columns
//   - arrays of objects where every element has "value" and a boolean
//     "primary" follow the contact rule (one "Primary" column plus one per label)
//   - other arrays of objects are sampled: only element 0 is walked, as "P.0"
//     with a "(First Item)" label; the other elements are not inspected
//   - the object under "custom_fields" is handed to the custom field resolver
//
// Extractor wraps the walker and the registry and never fails: malformed or
// unexpected samples produce a small fallback column set instead.
package discover
