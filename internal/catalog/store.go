package catalog

import (
	"context"

	"MiniLibrary/internal/library"
)

type Stats struct {
	Count  int `json:"count"`
	Genres int `json:"genres"`
}

type Store interface {
	Ping(ctx context.Context) error
	Add(ctx context.Context, req library.NewProductRequest) (library.Entry, error)
	Remove(ctx context.Context, kind, title string) (bool, error)
	Sort(ctx context.Context, key string) ([]library.Entry, error)
	List(ctx context.Context) ([]library.Entry, error)
	Stats(ctx context.Context) (Stats, error)
}
