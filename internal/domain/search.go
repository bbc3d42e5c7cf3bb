package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SearchField is a closed selector over the searchable book attributes.
// Dispatching over the enum keeps field lookup explicit; no reflection.
type SearchField string

const (
	SearchByID     SearchField = "id"
	SearchByTitle  SearchField = "title"
	SearchByAuthor SearchField = "author"
	SearchByStock  SearchField = "stock"
)

// ParseSearchField maps a user-supplied field name onto the selector.
func ParseSearchField(s string) (SearchField, error) {
	switch f := SearchField(strings.ToLower(strings.TrimSpace(s))); f {
	case SearchByID, SearchByTitle, SearchByAuthor, SearchByStock:
		return f, nil
	default:
		return "", &OpError{
			Op:   "domain.parse_search_field",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("unknown search field %q (expected id|title|author|stock)", s),
		}
	}
}

// Numeric reports whether the field requires an integer value.
func (f SearchField) Numeric() bool {
	return f == SearchByID || f == SearchByStock
}

// BookMatcher compiles (field, value) into an exact-equality predicate.
// Numeric fields require value to parse as an integer.
func BookMatcher(field SearchField, value string) (func(Book) bool, error) {
	if field.Numeric() {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, &OpError{
				Op:   "domain.book_matcher",
				Kind: KindInvalidInput,
				Err:  fmt.Errorf("field %q needs an integer value, got %q", field, value),
			}
		}

		if field == SearchByID {
			return func(b Book) bool { return b.ID == n }, nil
		}
		return func(b Book) bool { return b.Stock == n }, nil
	}

	switch field {
	case SearchByTitle:
		return func(b Book) bool { return b.Title == value }, nil
	case SearchByAuthor:
		return func(b Book) bool { return b.Author == value }, nil
	default:
		return nil, &OpError{
			Op:   "domain.book_matcher",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("unknown search field %q", field),
		}
	}
}
