// Package dictionary maps distinct n-gram strings to dense dimension ids and
// tracks per-dimension document frequencies.
//
// Dimension ids are assigned on first sight and are permanent: they are never
// reassigned, compacted or removed. The document frequency of a dimension is
// the number of insert operations whose vector touched it, not the number of
// unique item ids.
package dictionary

import "fmt"

// Dictionary assigns dimension ids to n-grams and tracks document
// frequencies. It is mutated only during index construction; a finalized
// index reads it without synchronization.
type Dictionary struct {
	dims    map[string]uint32
	docFreq []uint32
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		dims: make(map[string]uint32),
	}
}

// AddOrGet returns the dimension id for gram, assigning the next dense id if
// the gram has not been seen before.
func (d *Dictionary) AddOrGet(gram string) uint32 {
	if dim, ok := d.dims[gram]; ok {
		return dim
	}

	dim := uint32(len(d.docFreq))
	d.dims[gram] = dim
	d.docFreq = append(d.docFreq, 0)
	return dim
}

// Lookup returns the dimension id for gram, if assigned.
func (d *Dictionary) Lookup(gram string) (uint32, bool) {
	dim, ok := d.dims[gram]
	return dim, ok
}

// BumpDocFreq increments the document frequency of dim by one. Callers
// invoke it once per insert per touched dimension.
func (d *Dictionary) BumpDocFreq(dim uint32) {
	d.docFreq[dim]++
}

// DocFreq returns the document frequency of dim.
//
// A dimension outside the assigned range can only come from a corrupted
// index; this is a fatal invariant violation, not a recoverable condition.
func (d *Dictionary) DocFreq(dim uint32) uint32 {
	if int(dim) >= len(d.docFreq) {
		panic(fmt.Sprintf("dictionary: unknown dimension %d (have %d)", dim, len(d.docFreq)))
	}
	return d.docFreq[dim]
}

// Len returns the number of assigned dimensions.
func (d *Dictionary) Len() int {
	return len(d.docFreq)
}

// Snapshot is the serializable form of a Dictionary.
type Snapshot struct {
	Dims    map[string]uint32 `json:"dims" msgpack:"dims"`
	DocFreq []uint32          `json:"doc_freq" msgpack:"doc_freq"`
}

// Snapshot returns a deep copy of the dictionary state for serialization.
func (d *Dictionary) Snapshot() *Snapshot {
	dims := make(map[string]uint32, len(d.dims))
	for gram, dim := range d.dims {
		dims[gram] = dim
	}

	docFreq := make([]uint32, len(d.docFreq))
	copy(docFreq, d.docFreq)

	return &Snapshot{Dims: dims, DocFreq: docFreq}
}

// FromSnapshot reconstructs a dictionary from its serialized form.
func FromSnapshot(s *Snapshot) (*Dictionary, error) {
	if len(s.Dims) != len(s.DocFreq) {
		return nil, fmt.Errorf("dictionary: %d grams but %d frequency slots", len(s.Dims), len(s.DocFreq))
	}

	dims := make(map[string]uint32, len(s.Dims))
	for gram, dim := range s.Dims {
		if int(dim) >= len(s.DocFreq) {
			return nil, fmt.Errorf("dictionary: gram %q has out-of-range dimension %d", gram, dim)
		}
		dims[gram] = dim
	}

	docFreq := make([]uint32, len(s.DocFreq))
	copy(docFreq, s.DocFreq)

	return &Dictionary{dims: dims, docFreq: docFreq}, nil
}
