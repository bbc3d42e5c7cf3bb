package usecase

import (
	"errors"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	jsoniter "github.com/json-iterator/go"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
)

var queryCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// Query evaluates JSONPath expressions against the library snapshot,
// using the same document shape as the data file. It backs the `query`
// command for ad-hoc reporting, e.g. `$.books[*].title`.
type Query struct {
	library *Library
}

func NewQuery(library *Library) *Query {
	return &Query{library: library}
}

// Execute runs a JSONPath expression over the current state and returns
// the matched value.
func (q *Query) Execute(expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{
			Op:   "query.execute",
			Kind: domain.KindInvalidInput,
			Err:  errors.New("empty jsonpath expression"),
		}
	}

	doc, err := snapshotDocument(q.library.Snapshot())
	if err != nil {
		return nil, err
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.execute",
			Kind: domain.KindInvalidInput,
			Err:  err,
		}
	}
	return val, nil
}

// snapshotDocument converts the snapshot into the generic JSON shape
// jsonpath operates on (maps and slices).
func snapshotDocument(snap domain.Snapshot) (any, error) {
	b, err := queryCodec.Marshal(snap)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.marshal",
			Kind: domain.KindPersistence,
			Err:  err,
		}
	}

	var doc any
	if err := queryCodec.Unmarshal(b, &doc); err != nil {
		return nil, &domain.OpError{
			Op:   "query.unmarshal",
			Kind: domain.KindPersistence,
			Err:  err,
		}
	}
	return doc, nil
}
