package control

// Stanza is an ordered collection of fields. The order of first
// insertion is preserved; setting an existing key overwrites its value
// in place without changing its position.
type Stanza struct {
	keys   []string
	fields map[string]Value
}

// NewStanza returns an empty stanza.
func NewStanza() *Stanza {
	return &Stanza{fields: make(map[string]Value)}
}

// Len returns the number of fields in the stanza.
func (s *Stanza) Len() int { return len(s.keys) }

// Keys returns the field names in stanza order.
func (s *Stanza) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Get returns the value of the named field.
func (s *Stanza) Get(key string) (Value, bool) {
	v, ok := s.fields[key]
	return v, ok
}

// Has reports whether the stanza contains the named field.
func (s *Stanza) Has(key string) bool {
	_, ok := s.fields[key]
	return ok
}

// Field returns the content of the named field as a string (multi-line
// values joined with newlines), or "" if the field is absent.
func (s *Stanza) Field(key string) string {
	v, ok := s.fields[key]
	if !ok {
		return ""
	}
	return v.String()
}

// Set inserts or overwrites a field. A new key is appended at the end;
// an existing key keeps its original position.
func (s *Stanza) Set(key string, v Value) {
	if s.fields == nil {
		s.fields = make(map[string]Value)
	}
	if _, ok := s.fields[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.fields[key] = v
}

// Delete removes the named field, reporting whether it was present.
func (s *Stanza) Delete(key string) bool {
	if _, ok := s.fields[key]; !ok {
		return false
	}
	delete(s.fields, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

// Equal reports whether two stanzas hold the same fields with the same
// values in the same order.
func (s *Stanza) Equal(o *Stanza) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.keys) != len(o.keys) {
		return false
	}
	for i, k := range s.keys {
		if o.keys[i] != k {
			return false
		}
		if !s.fields[k].Equal(o.fields[k]) {
			return false
		}
	}
	return true
}

// Document is an ordered sequence of stanzas.
type Document []*Stanza
