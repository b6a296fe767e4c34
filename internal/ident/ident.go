package ident

// Ident is a uniquely interned identifier record. Every occurrence of a
// name in a token stream points at the same record, so identifiers can be
// compared by pointer or by UID instead of by string.
type Ident struct {
	Name    string
	UID     int
	Keyword bool
}

// Interner owns the identifier records for one lexing session. Records
// live in an arena addressed by dense UID: seeded names occupy UIDs
// 0..len(seed)-1 in seed order, user identifiers follow from len(seed)
// upward in first-seen order.
type Interner struct {
	names map[string]*Ident
	arena []*Ident
}

// NewInterner creates an interner pre-seeded with the given names, which
// are marked as keywords. A seeded record's UID equals its position in
// seed, so seeding with a ranked keyword list makes UID and rank agree.
func NewInterner(seed []string) *Interner {
	in := &Interner{
		names: make(map[string]*Ident, 2*len(seed)),
	}
	for _, name := range seed {
		id := &Ident{Name: name, UID: len(in.arena), Keyword: true}
		in.arena = append(in.arena, id)
		in.names[name] = id
	}
	return in
}

// Intern returns the record for name, creating one on first sight.
func (in *Interner) Intern(name string) *Ident {
	if id, ok := in.names[name]; ok {
		return id
	}
	id := &Ident{Name: name, UID: len(in.arena)}
	in.arena = append(in.arena, id)
	in.names[name] = id
	return id
}

// Lookup returns the record for name without creating one.
func (in *Interner) Lookup(name string) (*Ident, bool) {
	id, ok := in.names[name]
	return id, ok
}

// ByUID returns the record with the given UID.
func (in *Interner) ByUID(uid int) (*Ident, bool) {
	if uid < 0 || uid >= len(in.arena) {
		return nil, false
	}
	return in.arena[uid], true
}

// Len returns the number of interned names, seeded ones included.
func (in *Interner) Len() int {
	return len(in.arena)
}
