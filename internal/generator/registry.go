package generator

import "slices"

// Registry records which output file owns the declaration of each definition
// and which other files already import it. One Registry spans a whole
// generation run; it is not safe for concurrent use because ownership depends
// on registration order.
type Registry struct {
	entries map[string]*registryEntry
	order   []string
}

type registryEntry struct {
	owner      string
	importedBy []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*registryEntry)}
}

// Known reports whether ref already has an owning file.
func (r *Registry) Known(ref string) bool {
	_, ok := r.entries[ref]
	return ok
}

// Owner returns the file that declares ref, or "" when ref is unknown.
func (r *Registry) Owner(ref string) string {
	if e, ok := r.entries[ref]; ok {
		return e.owner
	}

	return ""
}

// Register makes file the owner of ref. It returns false and changes nothing
// when ref already has an owner.
func (r *Registry) Register(ref, file string) bool {
	if r.Known(ref) {
		return false
	}

	r.entries[ref] = &registryEntry{owner: file}
	r.order = append(r.order, ref)

	return true
}

// Imported reports whether file already imports ref.
func (r *Registry) Imported(ref, file string) bool {
	e, ok := r.entries[ref]

	return ok && slices.Contains(e.importedBy, file)
}

// RecordImport marks ref as imported by file. It returns false when ref is
// unknown, file owns ref, or the import was already recorded.
func (r *Registry) RecordImport(ref, file string) bool {
	e, ok := r.entries[ref]
	if !ok || e.owner == file || r.Imported(ref, file) {
		return false
	}

	e.importedBy = append(e.importedBy, file)

	return true
}

// ImportedBy returns the files importing ref, in import order.
func (r *Registry) ImportedBy(ref string) []string {
	if e, ok := r.entries[ref]; ok {
		return e.importedBy
	}

	return nil
}

// Refs returns every registered definition in registration order.
func (r *Registry) Refs() []string {
	return r.order
}
