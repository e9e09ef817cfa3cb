package models

// ElementResult records whether a required notebook element was found.
type ElementResult struct {
	// Label is the element description.
	Label string `json:"label"`
	// Present reports whether the element predicate matched.
	Present bool `json:"present"`
}
