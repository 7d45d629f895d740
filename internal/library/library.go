// Package library holds an in-memory catalog of books and journals.
//
// A Library is owned by its caller: construct one with New and pass it
// around. It does no locking of its own.
package library

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

type NewProductRequest struct {
	Kind        string  `json:"kind"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Genre       string  `json:"genre"`
	Price       float64 `json:"price,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Entry is a read-only view of a product for rendering.
type Entry struct {
	Kind        Kind    `json:"kind"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Genre       string  `json:"genre"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

func entryOf(p Product) Entry {
	return Entry{
		Kind:        p.Kind(),
		Title:       p.Title(),
		Author:      p.Author(),
		Genre:       p.Genre().Name(),
		Price:       p.Price(),
		Description: p.Description(),
	}
}

func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", e.Kind)
	fmt.Fprintf(&b, "Title: %s\n", e.Title)
	fmt.Fprintf(&b, "Author: %s\n", e.Author)
	fmt.Fprintf(&b, "Genre: %s\n", e.Genre)
	fmt.Fprintf(&b, "Price: %.2f\n", e.Price)
	if e.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", e.Description)
	}
	return b.String()
}

type Library struct {
	genres  *GenreTable
	catalog Catalog
}

func New() *Library {
	return &Library{genres: NewGenreTable()}
}

// AddProduct rejects an unknown kind before touching the genre table or the
// catalog.
func (l *Library) AddProduct(req NewProductRequest) (Entry, error) {
	kind, err := ParseKind(req.Kind)
	if err != nil {
		return Entry{}, err
	}

	p, err := NewBuilder(kind).
		Title(req.Title).
		Author(req.Author).
		Genre(l.genres.Intern(req.Genre)).
		Price(req.Price).
		Build()
	if err != nil {
		return Entry{}, err
	}

	p = p.WithDescription(req.Description)
	l.catalog.Add(p)
	return entryOf(p), nil
}

func (l *Library) RemoveProduct(kind, title string) (bool, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return false, err
	}
	return l.catalog.Remove(k, title), nil
}

func (l *Library) SortBy(key string) error {
	k, err := ParseSortKey(key)
	if err != nil {
		return err
	}
	return l.catalog.SortBy(k)
}

// ListAll yields the products in their current order. Each range over the
// returned sequence starts again from the first product.
func (l *Library) ListAll() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for p := range l.catalog.All() {
			if !yield(entryOf(p)) {
				return
			}
		}
	}
}

func (l *Library) Snapshot() []Entry {
	out := slices.Collect(l.ListAll())
	if out == nil {
		out = []Entry{}
	}
	return out
}

func (l *Library) Count() int {
	return l.catalog.Count()
}

func (l *Library) GenreCount() int {
	return l.genres.Count()
}
