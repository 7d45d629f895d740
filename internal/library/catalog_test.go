package library

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustProduct(t testing.TB, gt *GenreTable, kind Kind, title string, price float64) Product {
	t.Helper()
	p, err := NewBuilder(kind).Title(title).Author("author").Genre(gt.Intern("g")).Price(price).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return p
}

func titles(c *Catalog) []string {
	var out []string
	for p := range c.All() {
		out = append(out, p.Title())
	}
	return out
}

// drawProducts numbers each product through its author so order can be traced.
func drawProducts(rt *rapid.T, gt *GenreTable) []Product {
	n := rapid.IntRange(0, 30).Draw(rt, "n")
	out := make([]Product, 0, n)
	for i := 0; i < n; i++ {
		kind := rapid.SampledFrom([]Kind{KindBook, KindJournal}).Draw(rt, "kind")
		title := rapid.SampledFrom([]string{"A", "B", "a", "Zed", "1984", ""}).Draw(rt, "title")
		price := rapid.SampledFrom([]float64{0, 3.99, 9.99, 12.99, 15.99}).Draw(rt, "price")
		p, err := NewBuilder(kind).
			Title(title).
			Author(strconv.Itoa(i)).
			Genre(gt.Intern("g")).
			Price(price).
			Build()
		if err != nil {
			rt.Fatalf("build: %v", err)
		}
		out = append(out, p)
	}
	return out
}

func TestCatalog_CountTracksAddsAndRemoves(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		gt := NewGenreTable()
		var c Catalog

		products := drawProducts(rt, gt)
		for _, p := range products {
			c.Add(p)
		}

		removed := 0
		removes := rapid.IntRange(0, 10).Draw(rt, "removes")
		for i := 0; i < removes; i++ {
			kind := rapid.SampledFrom([]Kind{KindBook, KindJournal}).Draw(rt, "rmKind")
			title := rapid.SampledFrom([]string{"A", "B", "missing"}).Draw(rt, "rmTitle")
			if c.Remove(kind, title) {
				removed++
			}
		}

		if got, want := c.Count(), len(products)-removed; got != want {
			rt.Fatalf("count=%d want=%d", got, want)
		}
	})
}

func TestCatalog_RemoveFirstMatchOnly(t *testing.T) {
	gt := NewGenreTable()
	var c Catalog

	c.Add(mustProduct(t, gt, KindBook, "Dup", 1))
	c.Add(mustProduct(t, gt, KindJournal, "Dup", 2))
	c.Add(mustProduct(t, gt, KindBook, "Other", 3))
	c.Add(mustProduct(t, gt, KindBook, "Dup", 4))

	require.True(t, c.Remove(KindBook, "Dup"))

	var prices []float64
	for p := range c.All() {
		prices = append(prices, p.Price())
	}
	require.Equal(t, []float64{2, 3, 4}, prices)
}

func TestCatalog_RemoveNoMatchLeavesCatalog(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		gt := NewGenreTable()
		var c Catalog
		for _, p := range drawProducts(rt, gt) {
			c.Add(p)
		}
		before := slices.Collect(c.All())

		if c.Remove(KindJournal, "no such title") {
			rt.Fatalf("removed a product that does not exist")
		}

		if !slices.Equal(before, slices.Collect(c.All())) {
			rt.Fatalf("catalog changed on a non-matching remove")
		}
	})
}

func TestCatalog_RemoveOnEmpty(t *testing.T) {
	var c Catalog
	require.False(t, c.Remove(KindBook, "x"))
	require.Zero(t, c.Count())
}

func TestCatalog_SortByTitleIdempotentAndStable(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		gt := NewGenreTable()
		var c Catalog
		for _, p := range drawProducts(rt, gt) {
			c.Add(p)
		}

		if err := c.SortBy(SortByTitle); err != nil {
			rt.Fatalf("sort: %v", err)
		}
		once := slices.Collect(c.All())

		for i := 1; i < len(once); i++ {
			prev, cur := once[i-1], once[i]
			if prev.Title() > cur.Title() {
				rt.Fatalf("not sorted at %d: %q > %q", i, prev.Title(), cur.Title())
			}
			if prev.Title() == cur.Title() && atoi(rt, prev.Author()) > atoi(rt, cur.Author()) {
				rt.Fatalf("unstable at %d for title %q", i, cur.Title())
			}
		}

		if err := c.SortBy(SortByTitle); err != nil {
			rt.Fatalf("sort: %v", err)
		}
		if !slices.Equal(once, slices.Collect(c.All())) {
			rt.Fatalf("second title sort changed the order")
		}
	})
}

func TestCatalog_SortByPriceNonDecreasingAndStable(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		gt := NewGenreTable()
		var c Catalog
		for _, p := range drawProducts(rt, gt) {
			c.Add(p)
		}

		if err := c.SortBy(SortByPrice); err != nil {
			rt.Fatalf("sort: %v", err)
		}
		sorted := slices.Collect(c.All())

		for i := 1; i < len(sorted); i++ {
			prev, cur := sorted[i-1], sorted[i]
			if prev.Price() > cur.Price() {
				rt.Fatalf("price decreases at %d: %v > %v", i, prev.Price(), cur.Price())
			}
			if prev.Price() == cur.Price() && atoi(rt, prev.Author()) > atoi(rt, cur.Author()) {
				rt.Fatalf("unstable at %d for price %v", i, cur.Price())
			}
		}
	})
}

func TestCatalog_SortByPriceExample(t *testing.T) {
	gt := NewGenreTable()
	var c Catalog
	c.Add(mustProduct(t, gt, KindBook, "Harry Potter", 9.99))
	c.Add(mustProduct(t, gt, KindBook, "To Kill a Mockingbird", 10.99))
	c.Add(mustProduct(t, gt, KindBook, "The Great Gatsby", 15.99))
	c.Add(mustProduct(t, gt, KindJournal, "Five-Minute Journal", 3.99))

	require.NoError(t, c.SortBy(SortByPrice))
	require.Equal(t, []string{
		"Five-Minute Journal",
		"Harry Potter",
		"To Kill a Mockingbird",
		"The Great Gatsby",
	}, titles(&c))
}

func TestCatalog_SortByTitleIsCaseRespecting(t *testing.T) {
	gt := NewGenreTable()
	var c Catalog
	c.Add(mustProduct(t, gt, KindBook, "apple", 0))
	c.Add(mustProduct(t, gt, KindBook, "Banana", 0))
	c.Add(mustProduct(t, gt, KindBook, "Apple", 0))

	require.NoError(t, c.SortBy(SortByTitle))
	require.Equal(t, []string{"Apple", "Banana", "apple"}, titles(&c))
}

func TestCatalog_SortByUnknownKey(t *testing.T) {
	gt := NewGenreTable()
	var c Catalog
	c.Add(mustProduct(t, gt, KindBook, "b", 2))
	c.Add(mustProduct(t, gt, KindBook, "a", 1))

	err := c.SortBy(SortKey("author"))
	require.ErrorIs(t, err, ErrInvalidSortKey)
	require.Equal(t, []string{"b", "a"}, titles(&c))
}

func TestCatalog_SortEmpty(t *testing.T) {
	var c Catalog
	require.NoError(t, c.SortBy(SortByTitle))
	require.NoError(t, c.SortBy(SortByPrice))
	require.Zero(t, c.Count())
}

func TestCatalog_AllIsRestartable(t *testing.T) {
	gt := NewGenreTable()
	var c Catalog
	c.Add(mustProduct(t, gt, KindBook, "one", 1))
	c.Add(mustProduct(t, gt, KindJournal, "two", 2))

	first := slices.Collect(c.All())
	second := slices.Collect(c.All())
	require.Len(t, first, 2)
	require.Equal(t, first, second)

	for range c.All() {
		break
	}
	require.Equal(t, first, slices.Collect(c.All()))
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("title")
	require.NoError(t, err)
	require.Equal(t, SortByTitle, k)

	k, err = ParseSortKey("price")
	require.NoError(t, err)
	require.Equal(t, SortByPrice, k)

	_, err = ParseSortKey("Price")
	require.ErrorIs(t, err, ErrInvalidSortKey)
}

func atoi(rt *rapid.T, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		rt.Fatalf("atoi %q: %v", s, err)
	}
	return n
}
