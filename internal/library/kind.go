package library

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKind    = errors.New("invalid kind")
	ErrInvalidSortKey = errors.New("invalid sort key")
	ErrIncomplete     = errors.New("incomplete product")
)

type Kind string

const (
	KindBook    Kind = "Book"
	KindJournal Kind = "Journal"
)

// ParseKind is case-respecting: "book" is not a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindBook, KindJournal:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

func (k Kind) String() string { return string(k) }
