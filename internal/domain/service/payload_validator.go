package service

// PayloadValidator checks `validate` struct tags on request payloads.
type PayloadValidator interface {
	// Validate returns a readable error describing the first violated constraints, or nil.
	Validate(payload any) error
}
