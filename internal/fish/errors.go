package fish

import "fmt"

// NotFoundError is returned by catalog lookups for an id the catalog does
// not define.
type NotFoundError struct {
	Ref Ref
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Ref.Kind, e.Ref.Id)
}

func notFound(k Kind, id int) error {
	return &NotFoundError{Ref: Ref{Kind: k, Id: id}}
}
