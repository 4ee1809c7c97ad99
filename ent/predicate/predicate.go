// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// List is the predicate function for list builders.
type List func(*sql.Selector)

// ListMembership is the predicate function for listmembership builders.
type ListMembership func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
