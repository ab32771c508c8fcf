package types

// HeaderMapping accumulates header files per destination sub-directory.
// Destinations keep first-insertion order and files keep the order they
// were added in, so downstream link generation stays deterministic
// without sorting.  Adding to an existing destination appends; a bucket
// is never replaced.
type HeaderMapping struct {
	order []string
	files map[string][]string
}

func NewHeaderMapping() *HeaderMapping {
	return &HeaderMapping{files: map[string][]string{}}
}

// Add appends headers to the destination bucket, creating the bucket on
// first use.  Adding zero headers is a no-op and does not create an
// empty bucket.
func (m *HeaderMapping) Add(dest string, headers ...string) {
	if len(headers) == 0 {
		return
	}
	if _, ok := m.files[dest]; !ok {
		m.order = append(m.order, dest)
	}
	m.files[dest] = append(m.files[dest], headers...)
}

// Merge appends every bucket of other into m, preserving other's
// destination order.
func (m *HeaderMapping) Merge(other *HeaderMapping) {
	if other == nil {
		return
	}
	for _, dest := range other.order {
		m.Add(dest, other.files[dest]...)
	}
}

// Destinations returns the destination sub-directories in insertion
// order.
func (m *HeaderMapping) Destinations() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// HeadersFor returns the headers accumulated for one destination.
func (m *HeaderMapping) HeadersFor(dest string) []string {
	headers := m.files[dest]
	out := make([]string, len(headers))
	copy(out, headers)
	return out
}

// Empty reports whether no header has been added.
func (m *HeaderMapping) Empty() bool {
	return len(m.order) == 0
}

// HeaderCount returns the total number of header entries across all
// buckets.
func (m *HeaderMapping) HeaderCount() int {
	total := 0
	for _, headers := range m.files {
		total += len(headers)
	}
	return total
}
