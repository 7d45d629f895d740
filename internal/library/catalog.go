package library

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

type SortKey string

const (
	SortByTitle SortKey = "title"
	SortByPrice SortKey = "price"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortByTitle, SortByPrice:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
}

// Catalog keeps products in insertion order until SortBy is called.
// It is not safe for concurrent use.
type Catalog struct {
	products []Product
}

func (c *Catalog) Add(p Product) {
	c.products = append(c.products, p)
}

// Remove deletes the first product with the given kind and title and reports
// whether one was found.
func (c *Catalog) Remove(kind Kind, title string) bool {
	i := slices.IndexFunc(c.products, func(p Product) bool { return p.matches(kind, title) })
	if i < 0 {
		return false
	}
	c.products = slices.Delete(c.products, i, i+1)
	return true
}

// SortBy reorders the catalog in place. Products with equal keys keep their
// relative order.
func (c *Catalog) SortBy(key SortKey) error {
	var cmpFn func(a, b Product) int

	switch key {
	case SortByTitle:
		cmpFn = func(a, b Product) int { return strings.Compare(a.title, b.title) }
	case SortByPrice:
		cmpFn = func(a, b Product) int { return cmp.Compare(a.price, b.price) }
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSortKey, string(key))
	}

	slices.SortStableFunc(c.products, cmpFn)
	return nil
}

func (c *Catalog) Count() int {
	return len(c.products)
}

func (c *Catalog) All() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range c.products {
			if !yield(p) {
				return
			}
		}
	}
}
