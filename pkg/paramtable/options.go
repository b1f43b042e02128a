// Package paramtable models an editable table of named options: rows of
// symbolic expression cells assigned to named, unit-tagged parameter columns.
package paramtable

// Options configures a newly constructed table.
type Options struct {
	// Documentation specifies whether per-row annotation blobs are kept.
	// If nil, defaults to false.
	Documentation *bool
}

// DefaultOptions returns default table options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldEnableDocumentation returns whether per-row annotation blobs are kept.
func (o Options) ShouldEnableDocumentation() bool {
	if o.Documentation != nil {
		return *o.Documentation
	}
	return false
}
