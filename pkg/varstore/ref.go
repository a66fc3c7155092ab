package varstore

// Ref addresses one location in a Store. Refs are values: deriving a
// child copies the path, so refs held across mutations stay valid.
type Ref struct {
	store *Store
	path  []string
}

// Child returns a Ref one level below r.
func (r Ref) Child(name string) Ref {
	path := make([]string, len(r.path)+1)
	copy(path, r.path)
	path[len(r.path)] = name
	return Ref{store: r.store, path: path}
}

// At descends several levels at once.
func (r Ref) At(names ...string) Ref {
	for _, name := range names {
		r = r.Child(name)
	}
	return r
}

// Name returns the last path element, or "" for the root.
func (r Ref) Name() string {
	if len(r.path) == 0 {
		return ""
	}
	return r.path[len(r.path)-1]
}

// Path returns a copy of the full path.
func (r Ref) Path() []string {
	return append([]string(nil), r.path...)
}

// Put stores val at r, creating intermediate directories as needed.
func (r Ref) Put(val any) error {
	return r.store.put(r.path, val)
}

// Get returns the value at r, or ErrNotFound.
func (r Ref) Get() (any, error) {
	return r.store.get(r.path)
}

// Lookup returns the value of the named child, or def when it is absent.
func (r Ref) Lookup(name string, def any) any {
	v, err := r.Child(name).Get()
	if err != nil {
		return def
	}
	return v
}

// List returns refs to the children of r in lexical order.
func (r Ref) List() ([]Ref, error) {
	names, err := r.store.list(r.path)
	if err != nil {
		return nil, err
	}
	refs := make([]Ref, len(names))
	for i, name := range names {
		refs[i] = r.Child(name)
	}
	return refs, nil
}

// MkDir ensures a directory exists at r.
func (r Ref) MkDir() error {
	return r.store.mkdir(r.path)
}

// Remove deletes the entry at r, failing if it does not exist.
func (r Ref) Remove() error {
	return r.store.remove(r.path)
}

// Clear deletes the entry at r if present.
func (r Ref) Clear() {
	r.store.clear(r.path)
}

// Watch registers fn to be called when the value at r changes, returning
// the current value alongside the handle.
func (r Ref) Watch(fn WatchFunc) (any, *Watch, error) {
	return r.store.watch(r.path, fn)
}

// Unwatch removes a watch registered at r.
func (r Ref) Unwatch(w *Watch) {
	r.store.unwatch(w)
}
