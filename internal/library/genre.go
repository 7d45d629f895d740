package library

type Genre struct {
	name string
}

func (g *Genre) Name() string {
	if g == nil {
		return ""
	}
	return g.name
}

// GenreTable hands out one *Genre per distinct name for its whole lifetime.
type GenreTable struct {
	m map[string]*Genre
}

func NewGenreTable() *GenreTable {
	return &GenreTable{m: map[string]*Genre{}}
}

func (t *GenreTable) Intern(name string) *Genre {
	if g, ok := t.m[name]; ok {
		return g
	}
	g := &Genre{name: name}
	t.m[name] = g
	return g
}

func (t *GenreTable) Count() int {
	return len(t.m)
}
