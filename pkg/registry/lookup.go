package registry

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind classifies a registry leaf.
type Kind string

const (
	KindFormat  Kind = "format"
	KindPattern Kind = "pattern"
	KindDerived Kind = "derived"
	KindNaming  Kind = "naming"
	KindEnum    Kind = "enum"
	KindLayout  Kind = "layout"
	KindRuntime Kind = "runtime"
)

// IsRegex reports whether leaves of this kind hold regular expression sources.
func (k Kind) IsRegex() bool {
	return k == KindPattern || k == KindDerived || k == KindNaming
}

// Entry is a single leaf of the registry addressed by its dotted path.
type Entry struct {
	Path  string `json:"path"`
	Value any    `json:"value"` // string or int
	Kind  Kind   `json:"kind"`
}

// Group returns the top-level group of the entry, e.g. "Pattern".
func (e Entry) Group() string {
	group, _, _ := strings.Cut(e.Path, ".")
	return group
}

// NotFoundError is returned when a dotted path does not resolve to a leaf.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry key not found: %q", e.Path)
}

// Lookup resolves a dotted path such as "Pattern.Query.TIME" to its leaf.
// Paths naming a group rather than a leaf are not found.
func Lookup(path string) (Entry, error) {
	entry, ok := index[path]
	if !ok {
		return Entry{}, &NotFoundError{Path: path}
	}
	return entry, nil
}

// Entries returns every leaf in declaration order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// EntriesInGroup returns the leaves of one top-level group such as "Span".
// An unknown group yields a NotFoundError.
func EntriesInGroup(group string) ([]Entry, error) {
	var out []Entry
	for _, entry := range entries {
		if entry.Group() == group {
			out = append(out, entry)
		}
	}
	if len(out) == 0 {
		return nil, &NotFoundError{Path: group}
	}
	return out, nil
}

// Groups returns the top-level group names in declaration order.
func Groups() []string {
	var groups []string
	seen := map[string]bool{}
	for _, entry := range entries {
		if group := entry.Group(); !seen[group] {
			seen[group] = true
			groups = append(groups, group)
		}
	}
	return groups
}

// flatten walks the registry struct and emits one entry per leaf, naming each
// by the json tags along its path. A kind tag applies to everything below it
// unless a deeper field sets its own.
func flatten(r Registry) []Entry {
	var out []Entry
	walk(reflect.ValueOf(r), "", "", &out)
	return out
}

func walk(v reflect.Value, prefix string, kind Kind, out *[]Entry) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("json")
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		fieldKind := kind
		if tag := field.Tag.Get("kind"); tag != "" {
			fieldKind = Kind(tag)
		}

		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.Struct:
			walk(fv, path, fieldKind, out)
		case reflect.String:
			*out = append(*out, Entry{Path: path, Value: fv.String(), Kind: fieldKind})
		case reflect.Int:
			*out = append(*out, Entry{Path: path, Value: int(fv.Int()), Kind: fieldKind})
		default:
			panic(fmt.Sprintf("registry: unsupported leaf type %s at %s", fv.Type(), path))
		}
	}
}

func indexEntries(entries []Entry) map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, entry := range entries {
		m[entry.Path] = entry
	}
	return m
}
