package column

import "strings"

// PathSep separates segments of a column key.
const PathSep = "."

// Join appends child to parent, treating an empty parent as the root.
func Join(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + PathSep + child
}

// Segments splits a key into its path segments.
func Segments(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, PathSep)
}

// Parent returns the key without its last segment, "" for top-level keys.
func Parent(key string) string {
	i := strings.LastIndex(key, PathSep)
	if i < 0 {
		return ""
	}
	return key[:i]
}

// Leaf returns the last segment of key.
func Leaf(key string) string {
	return key[strings.LastIndex(key, PathSep)+1:]
}

// Root returns the first segment of key.
func Root(key string) string {
	root, _, _ := strings.Cut(key, PathSep)
	return root
}

// HasPrefix reports whether key is prefix itself or nested below it.
func HasPrefix(key, prefix string) bool {
	return key == prefix || strings.HasPrefix(key, prefix+PathSep)
}
