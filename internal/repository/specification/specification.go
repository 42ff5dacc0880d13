package specification

import "gorm.io/gorm"

// Specification is a composable query predicate. Passing several
// specifications to a repository call conjoins them: each Apply narrows the
// query further. This keeps multi-criteria filters an explicit AND of
// independently-optional clauses instead of a mutated shared filter object.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
