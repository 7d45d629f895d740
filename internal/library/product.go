package library

import "fmt"

const descriptionSep = " - "

// Product is a value; none of its methods mutate the receiver.
type Product struct {
	kind        Kind
	title       string
	author      string
	genre       *Genre
	price       float64
	description string
}

func (p Product) Kind() Kind          { return p.kind }
func (p Product) Title() string       { return p.title }
func (p Product) Author() string      { return p.author }
func (p Product) Genre() *Genre       { return p.genre }
func (p Product) Price() float64      { return p.price }
func (p Product) Description() string { return p.description }

func (p Product) matches(k Kind, title string) bool {
	return p.kind == k && p.title == title
}

// WithDescription returns a copy of p whose description has text appended.
// An empty text leaves the description as it is, and the separator is only
// written between two non-empty parts.
func (p Product) WithDescription(text string) Product {
	if text == "" {
		return p
	}
	if p.description == "" {
		p.description = text
		return p
	}
	p.description = p.description + descriptionSep + text
	return p
}

// Builder assembles a Product in the order title, author, genre, price.
// Price is optional and defaults to zero.
type Builder struct {
	p Product

	hasTitle  bool
	hasAuthor bool
}

func NewBuilder(kind Kind) *Builder {
	return &Builder{p: Product{kind: kind}}
}

func (b *Builder) Title(title string) *Builder {
	b.p.title = title
	b.hasTitle = true
	return b
}

func (b *Builder) Author(author string) *Builder {
	b.p.author = author
	b.hasAuthor = true
	return b
}

func (b *Builder) Genre(g *Genre) *Builder {
	b.p.genre = g
	return b
}

func (b *Builder) Price(price float64) *Builder {
	b.p.price = price
	return b
}

func (b *Builder) Build() (Product, error) {
	if _, err := ParseKind(string(b.p.kind)); err != nil {
		return Product{}, err
	}

	var missing string
	switch {
	case !b.hasTitle:
		missing = "title"
	case !b.hasAuthor:
		missing = "author"
	case b.p.genre == nil:
		missing = "genre"
	}
	if missing != "" {
		return Product{}, fmt.Errorf("%w: %s not set", ErrIncomplete, missing)
	}

	return b.p, nil
}

func NewProduct(kind, title, author string, genre *Genre, price float64) (Product, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Product{}, err
	}
	return NewBuilder(k).
		Title(title).
		Author(author).
		Genre(genre).
		Price(price).
		Build()
}
