// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GitNimay/lumino-crm-vc/ent/listmembership"
	"github.com/GitNimay/lumino-crm-vc/ent/predicate"
)

// ListMembershipUpdate is the builder for updating ListMembership entities.
type ListMembershipUpdate struct {
	config
	hooks    []Hook
	mutation *ListMembershipMutation
}

// Where appends a list predicates to the ListMembershipUpdate builder.
func (_u *ListMembershipUpdate) Where(ps ...predicate.ListMembership) *ListMembershipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetListID sets the "list_id" field.
func (_u *ListMembershipUpdate) SetListID(v string) *ListMembershipUpdate {
	_u.mutation.SetListID(v)
	return _u
}

// SetNillableListID sets the "list_id" field if the given value is not nil.
func (_u *ListMembershipUpdate) SetNillableListID(v *string) *ListMembershipUpdate {
	if v != nil {
		_u.SetListID(*v)
	}
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *ListMembershipUpdate) SetLeadID(v string) *ListMembershipUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ListMembershipUpdate) SetNillableLeadID(v *string) *ListMembershipUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// Mutation returns the ListMembershipMutation object of the builder.
func (_u *ListMembershipUpdate) Mutation() *ListMembershipMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ListMembershipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListMembershipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ListMembershipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListMembershipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListMembershipUpdate) check() error {
	if v, ok := _u.mutation.ListID(); ok {
		if err := listmembership.ListIDValidator(v); err != nil {
			return &ValidationError{Name: "list_id", err: fmt.Errorf(`ent: validator failed for field "ListMembership.list_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadID(); ok {
		if err := listmembership.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "ListMembership.lead_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ListMembershipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listmembership.Table, listmembership.Columns, sqlgraph.NewFieldSpec(listmembership.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ListID(); ok {
		_spec.SetField(listmembership.FieldListID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(listmembership.FieldLeadID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listmembership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ListMembershipUpdateOne is the builder for updating a single ListMembership entity.
type ListMembershipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ListMembershipMutation
}

// SetListID sets the "list_id" field.
func (_u *ListMembershipUpdateOne) SetListID(v string) *ListMembershipUpdateOne {
	_u.mutation.SetListID(v)
	return _u
}

// SetNillableListID sets the "list_id" field if the given value is not nil.
func (_u *ListMembershipUpdateOne) SetNillableListID(v *string) *ListMembershipUpdateOne {
	if v != nil {
		_u.SetListID(*v)
	}
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *ListMembershipUpdateOne) SetLeadID(v string) *ListMembershipUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ListMembershipUpdateOne) SetNillableLeadID(v *string) *ListMembershipUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// Mutation returns the ListMembershipMutation object of the builder.
func (_u *ListMembershipUpdateOne) Mutation() *ListMembershipMutation {
	return _u.mutation
}

// Where appends a list predicates to the ListMembershipUpdate builder.
func (_u *ListMembershipUpdateOne) Where(ps ...predicate.ListMembership) *ListMembershipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ListMembershipUpdateOne) Select(field string, fields ...string) *ListMembershipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ListMembership entity.
func (_u *ListMembershipUpdateOne) Save(ctx context.Context) (*ListMembership, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListMembershipUpdateOne) SaveX(ctx context.Context) *ListMembership {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ListMembershipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListMembershipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListMembershipUpdateOne) check() error {
	if v, ok := _u.mutation.ListID(); ok {
		if err := listmembership.ListIDValidator(v); err != nil {
			return &ValidationError{Name: "list_id", err: fmt.Errorf(`ent: validator failed for field "ListMembership.list_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadID(); ok {
		if err := listmembership.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "ListMembership.lead_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ListMembershipUpdateOne) sqlSave(ctx context.Context) (_node *ListMembership, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listmembership.Table, listmembership.Columns, sqlgraph.NewFieldSpec(listmembership.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ListMembership.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listmembership.FieldID)
		for _, f := range fields {
			if !listmembership.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != listmembership.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ListID(); ok {
		_spec.SetField(listmembership.FieldListID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(listmembership.FieldLeadID, field.TypeString, value)
	}
	_node = &ListMembership{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listmembership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
