package naming

// FieldNames maps raw CRM keys (or full column paths) to display names, as
// supplied by the CRM's field-definition endpoint.
type FieldNames map[string]string

// Formatter produces display names for column keys.
type Formatter struct {
	fields FieldNames
}

// NewFormatter returns a formatter backed by fields; nil is allowed.
func NewFormatter(fields FieldNames) *Formatter {
	return &Formatter{fields: fields}
}

// Lookup returns the mapped name for the full path, then for the bare key.
func (f *Formatter) Lookup(path, key string) (string, bool) {
	if f == nil || f.fields == nil {
		return "", false
	}

	if name, ok := f.fields[path]; ok && name != "" {
		return name, true
	}

	if name, ok := f.fields[key]; ok && name != "" {
		return name, true
	}

	return "", false
}

// Label is the standalone display name of key: the mapped name if any,
// Title(key) otherwise.
func (f *Formatter) Label(path, key string) string {
	if name, ok := f.Lookup(path, key); ok {
		return name
	}

	return Title(key)
}

// Format is Label joined with the parent's display name when nested. Nested
// columns only match the field map by full path: a bare "name" entry
// describes the record's own name, not every embedded object's.
func (f *Formatter) Format(path, key, parentName string) string {
	if parentName == "" {
		return f.Label(path, key)
	}

	label, ok := f.Lookup(path, path)
	if !ok {
		label = Title(key)
	}

	return parentName + " " + label
}
