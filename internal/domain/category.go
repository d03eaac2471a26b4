package domain

// Category is a named grouping that topics belong to. Names are unique and
// human-chosen; forms reference categories by name, storage by id.
// Category administration happens outside this core — topics only bind to
// categories that already exist.
type Category struct {
	ID   int64
	Name string
}
