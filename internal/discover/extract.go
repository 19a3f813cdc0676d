package discover

import (
	"fmt"
	"log/slog"

	"crmcols/internal/column"
	"crmcols/internal/common"
	"crmcols/internal/diagnostic"
	"crmcols/internal/naming"
	"crmcols/internal/registry"
	"crmcols/jsonval"
)

// Result is the outcome of one extraction.
type Result struct {
	Entity      column.EntityType
	Columns     []column.Column
	Fallback    bool // Columns is the minimal fallback set
	Diagnostics diagnostic.Diagnostics
}

// Extractor discovers, names, classifies and orders the columns of a sample
// record.
type Extractor struct {
	primary    map[column.EntityType][]string
	classifier *naming.Classifier
	log        *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPrimaryFields overrides the primary field lists per entity; entities
// missing from fields keep the defaults.
func WithPrimaryFields(fields map[column.EntityType][]string) Option {
	return func(e *Extractor) {
		for entity, list := range fields {
			e.primary[entity] = list
		}
	}
}

// WithClassifier replaces the default read-only classifier.
func WithClassifier(cl *naming.Classifier) Option {
	return func(e *Extractor) { e.classifier = cl }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.log = l
		}
	}
}

// New returns an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		primary:    make(map[column.EntityType][]string, len(registry.DefaultPrimaryFields)),
		classifier: naming.NewClassifier(),
		log:        slog.Default(),
	}
	for entity, list := range registry.DefaultPrimaryFields {
		e.primary[entity] = list
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PrimaryFields returns the primary field list used for entity.
func (e *Extractor) PrimaryFields(entity column.EntityType) []string {
	return e.primary[entity]
}

// ExtractJSON parses raw and extracts its columns. Invalid JSON yields the
// fallback set.
func (e *Extractor) ExtractJSON(entity column.EntityType, raw []byte, fields naming.FieldNames) Result {
	record, err := jsonval.Parse(raw)
	if err != nil {
		res := Result{Entity: entity}
		res.Diagnostics.AddError(diagnostic.CodeInvalidSample, err.Error(), entity.String(), "")
		return e.fallback(res)
	}
	return e.Extract(entity, record, fields)
}

// Extract returns the ordered columns of record. It never fails: a record
// that is not an object, yields no column, or trips a resolver produces the
// fallback set, with the cause in Result.Diagnostics.
func (e *Extractor) Extract(entity column.EntityType, record jsonval.Value, fields naming.FieldNames) (res Result) {
	res.Entity = entity

	defer func() {
		if r := recover(); r != nil {
			res.Diagnostics.AddError(diagnostic.CodeResolverPanic, fmt.Sprint(r), entity.String(), "")
			res = e.fallback(res)
		}
	}()

	if !record.IsObject() {
		res.Diagnostics.AddError(diagnostic.CodeUnexpectedShape,
			"sample record is "+record.Kind().String()+", want object", entity.String(), "")
		return e.fallback(res)
	}

	walker := NewWalker(naming.NewFormatter(fields))
	acc := walker.Walk(record, "", "", NewAccumulator(entity))
	res.Diagnostics.Merge(acc.Diagnostics)

	if len(acc.Columns) == 0 {
		res.Diagnostics.AddWarning(diagnostic.CodeUnexpectedShape, "sample record has no columns", entity.String(), "")
		return e.fallback(res)
	}

	reg := registry.New(entity,
		registry.WithPrimaryFields(e.primary[entity]),
		registry.WithClassifier(e.classifier),
		registry.WithLogger(e.log),
	)
	cols, report := reg.RegisterWithReport(acc.Columns)

	for _, key := range report.Duplicates {
		res.Diagnostics.AddInfo(diagnostic.CodeDuplicateColumn, "duplicate raw column resolved", entity.String(), key)
	}

	res.Columns = cols
	e.log.Debug("columns extracted", "entity", entity, "raw", len(acc.Columns), "final", len(cols),
		"suppressed", len(report.Suppressed))

	return res
}

func (e *Extractor) fallback(res Result) Result {
	res.Fallback = true
	res.Columns = FallbackColumns(res.Entity)
	res.Diagnostics.AddWarning(diagnostic.CodeFallbackColumns, "using fallback columns", res.Entity.String(), "")

	e.log.Warn("column extraction failed, using fallback columns",
		"entity", res.Entity, "cause", firstCause(res.Diagnostics))

	return res
}

func firstCause(d diagnostic.Diagnostics) string {
	if first, ok := common.First(d.All()); ok {
		return first.String()
	}
	return ""
}

// FallbackColumns is the minimal column set used when a sample cannot be
// read: id and name, plus email and phone for person-like entities.
func FallbackColumns(entity column.EntityType) []column.Column {
	cols := []column.Column{
		{Key: "id", Name: "ID", ReadOnly: true},
		{Key: "name", Name: "Name"},
	}
	if entity.PersonLike() {
		cols = append(cols,
			column.Column{Key: "email", Name: "Email"},
			column.Column{Key: "phone", Name: "Phone"},
		)
	}
	return cols
}
