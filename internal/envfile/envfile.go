package envfile

// Entry is a single KEY=VALUE pair.
type Entry struct {
	Key   string
	Value string
}

// Record is an ordered sequence of entries with unique keys. Set is
// last-write-wins: overwriting an existing key updates the value in place
// and keeps the key's original position.
type Record struct {
	entries []Entry
	index   map[string]int
}

// Set stores value under key, replacing any earlier value.
func (r *Record) Set(key, value string) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[key]; ok {
		r.entries[i].Value = value
		return
	}
	r.index[key] = len(r.entries)
	r.entries = append(r.entries, Entry{Key: key, Value: value})
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (string, bool) {
	i, ok := r.index[key]
	if !ok {
		return "", false
	}
	return r.entries[i].Value, true
}

// Len returns the number of entries.
func (r *Record) Len() int {
	return len(r.entries)
}

// Entries returns the entries in insertion order. The slice is shared with
// the record; callers must not mutate it.
func (r *Record) Entries() []Entry {
	return r.entries
}
