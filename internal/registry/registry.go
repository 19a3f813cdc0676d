package registry

import (
	"log/slog"

	"crmcols/internal/column"
	"crmcols/internal/naming"
)

// Registry deduplicates, filters, classifies and orders raw columns.
type Registry struct {
	entity       column.EntityType
	primary      []string
	suppressions []Suppression
	classifier   *naming.Classifier
	log          *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithPrimaryFields overrides the entity's default primary fields.
func WithPrimaryFields(fields []string) Option {
	return func(r *Registry) {
		if fields != nil {
			r.primary = fields
		}
	}
}

// WithClassifier replaces the default read-only classifier.
func WithClassifier(cl *naming.Classifier) Option {
	return func(r *Registry) { r.classifier = cl }
}

// WithSuppressions replaces the default suppression table.
func WithSuppressions(s []Suppression) Option {
	return func(r *Registry) { r.suppressions = s }
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// New returns a registry for entity.
func New(entity column.EntityType, opts ...Option) *Registry {
	r := &Registry{
		entity:       entity,
		primary:      DefaultPrimaryFields[entity],
		suppressions: DefaultSuppressions(),
		classifier:   naming.NewClassifier(),
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report describes what Register changed besides ordering.
type Report struct {
	Duplicates []string          // keys written more than once
	Suppressed map[string]string // dropped key -> suppression name
}

// Register runs the full pipeline over raw and returns the final columns.
func (r *Registry) Register(raw []column.Column) []column.Column {
	out, _ := r.RegisterWithReport(raw)
	return out
}

// RegisterWithReport is Register plus what was deduplicated and suppressed.
func (r *Registry) RegisterWithReport(raw []column.Column) ([]column.Column, Report) {
	collected, dups := collect(raw)

	survivors, dropped := suppress(r.entity, collected, r.suppressions)
	for key, rule := range dropped {
		r.log.Debug("column suppressed", "entity", r.entity, "key", key, "rule", rule)
	}

	classified := r.classify(survivors)
	Sort(classified, r.primary)

	return dedup(classified), Report{Duplicates: dups, Suppressed: dropped}
}

// classify sets ReadOnly on the survivors and traces the deciding rule.
func (r *Registry) classify(cols []column.Column) []column.Column {
	ctx := naming.NewContext(r.entity, cols)
	out := make([]column.Column, len(cols))
	for i, c := range cols {
		var rule string
		c.ReadOnly, rule = r.classifier.Classify(c, ctx)
		if rule != "" {
			r.log.Debug("column classified", "entity", r.entity, "key", c.Key, "rule", rule, "readOnly", c.ReadOnly)
		}
		out[i] = c
	}
	return out
}

// collect keeps one column per key: the last written value at the position
// of the first occurrence.
func collect(raw []column.Column) ([]column.Column, []string) {
	pos := make(map[string]int, len(raw))
	out := make([]column.Column, 0, len(raw))

	var dups []string

	for _, c := range raw {
		if c.Key == "" {
			continue
		}
		if i, ok := pos[c.Key]; ok {
			out[i] = c
			dups = append(dups, c.Key)
			continue
		}
		pos[c.Key] = len(out)
		out = append(out, c)
	}

	return out, dups
}

func dedup(cols []column.Column) []column.Column {
	seen := make(map[string]struct{}, len(cols))
	out := cols[:0]
	for _, c := range cols {
		if _, ok := seen[c.Key]; ok {
			continue
		}
		seen[c.Key] = struct{}{}
		out = append(out, c)
	}
	return out
}
