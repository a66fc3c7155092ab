// Package varstore provides a hierarchical variable store: a tree of
// string-keyed directories with arbitrary leaf values and per-path
// watches. Computations use it to track resource state along a branch;
// since every replay rebuilds its own store, no cross-branch cleanup is
// needed.
package varstore

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound reports a lookup of a path that does not exist.
	ErrNotFound = errors.New("varstore: path not found")
	// ErrNotDir reports a traversal through a leaf value.
	ErrNotDir = errors.New("varstore: path is not a directory")
)

// WatchFunc is called with the path that changed.
type WatchFunc func(path []string)

// Watch is a registered watch handle.
type Watch struct {
	path []string
	fn   WatchFunc
}

// Store is the root of a variable tree. Directories are
// map[string]any values; anything else is a leaf.
type Store struct {
	root    map[string]any
	watches map[string][]*Watch
}

func New() *Store {
	return &Store{
		root:    map[string]any{},
		watches: map[string][]*Watch{},
	}
}

// Top returns a Ref addressing the root directory.
func (s *Store) Top() Ref {
	return Ref{store: s}
}

// traverse walks to the directory holding the last element of path,
// creating intermediate directories when mkdirs is set. Creating a
// directory notifies watches on its parent.
func (s *Store) traverse(path []string, mkdirs bool) (map[string]any, error) {
	dir := s.root
	for i, k := range path {
		child, ok := dir[k]
		if !ok {
			if !mkdirs {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, join(path[:i+1]))
			}
			created := map[string]any{}
			dir[k] = created
			s.notify(path[:i])
			dir = created
			continue
		}
		sub, ok := child.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotDir, join(path[:i+1]))
		}
		dir = sub
	}
	return dir, nil
}

func (s *Store) put(path []string, val any) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: cannot assign the root", ErrNotDir)
	}
	dir, err := s.traverse(path[:len(path)-1], true)
	if err != nil {
		return err
	}
	dir[path[len(path)-1]] = val
	s.notify(path)
	return nil
}

func (s *Store) get(path []string) (any, error) {
	if len(path) == 0 {
		return s.root, nil
	}
	dir, err := s.traverse(path[:len(path)-1], false)
	if err != nil {
		return nil, err
	}
	v, ok := dir[path[len(path)-1]]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, join(path))
	}
	return v, nil
}

func (s *Store) list(path []string) ([]string, error) {
	v, err := s.get(path)
	if err != nil {
		return nil, err
	}
	dir, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, join(path))
	}
	names := make([]string, 0, len(dir))
	for name := range dir {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) mkdir(path []string) error {
	if len(path) == 0 {
		return nil
	}
	dir, err := s.traverse(path[:len(path)-1], true)
	if err != nil {
		return err
	}
	k := path[len(path)-1]
	if existing, ok := dir[k]; ok {
		if _, isDir := existing.(map[string]any); !isDir {
			return fmt.Errorf("%w: %s", ErrNotDir, join(path))
		}
		return nil
	}
	dir[k] = map[string]any{}
	s.notify(path)
	return nil
}

// remove deletes the entry at path, failing if it does not exist.
func (s *Store) remove(path []string) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: cannot remove the root", ErrNotDir)
	}
	dir, err := s.traverse(path[:len(path)-1], false)
	if err != nil {
		return err
	}
	k := path[len(path)-1]
	if _, ok := dir[k]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, join(path))
	}
	delete(dir, k)
	s.notify(path)
	return nil
}

// clear deletes the entry at path if present. Unlike remove it neither
// fails nor notifies.
func (s *Store) clear(path []string) {
	if len(path) == 0 {
		return
	}
	dir, err := s.traverse(path[:len(path)-1], false)
	if err != nil {
		return
	}
	delete(dir, path[len(path)-1])
}

func (s *Store) watch(path []string, fn WatchFunc) (any, *Watch, error) {
	val, err := s.get(path)
	if err != nil {
		return nil, nil, err
	}
	w := &Watch{path: append([]string(nil), path...), fn: fn}
	key := join(path)
	s.watches[key] = append(s.watches[key], w)
	return val, w, nil
}

func (s *Store) unwatch(w *Watch) {
	key := join(w.path)
	registered := s.watches[key]
	for i, candidate := range registered {
		if candidate == w {
			s.watches[key] = append(registered[:i:i], registered[i+1:]...)
			return
		}
	}
}

// notify fires watches registered at exactly path. Watches on ancestors
// only fire when a directory is created directly beneath them.
func (s *Store) notify(path []string) {
	for _, w := range s.watches[join(path)] {
		w.fn(path)
	}
}

func join(path []string) string {
	return strings.Join(path, "/")
}
