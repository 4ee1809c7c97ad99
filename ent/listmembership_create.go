// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GitNimay/lumino-crm-vc/ent/listmembership"
)

// ListMembershipCreate is the builder for creating a ListMembership entity.
type ListMembershipCreate struct {
	config
	mutation *ListMembershipMutation
	hooks    []Hook
}

// SetListID sets the "list_id" field.
func (_c *ListMembershipCreate) SetListID(v string) *ListMembershipCreate {
	_c.mutation.SetListID(v)
	return _c
}

// SetLeadID sets the "lead_id" field.
func (_c *ListMembershipCreate) SetLeadID(v string) *ListMembershipCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ListMembershipCreate) SetCreatedAt(v time.Time) *ListMembershipCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ListMembershipCreate) SetNillableCreatedAt(v *time.Time) *ListMembershipCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ListMembershipCreate) SetID(v string) *ListMembershipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ListMembershipCreate) SetNillableID(v *string) *ListMembershipCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ListMembershipMutation object of the builder.
func (_c *ListMembershipCreate) Mutation() *ListMembershipMutation {
	return _c.mutation
}

// Save creates the ListMembership in the database.
func (_c *ListMembershipCreate) Save(ctx context.Context) (*ListMembership, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ListMembershipCreate) SaveX(ctx context.Context) *ListMembership {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListMembershipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListMembershipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ListMembershipCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := listmembership.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := listmembership.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ListMembershipCreate) check() error {
	if _, ok := _c.mutation.ListID(); !ok {
		return &ValidationError{Name: "list_id", err: errors.New(`ent: missing required field "ListMembership.list_id"`)}
	}
	if v, ok := _c.mutation.ListID(); ok {
		if err := listmembership.ListIDValidator(v); err != nil {
			return &ValidationError{Name: "list_id", err: fmt.Errorf(`ent: validator failed for field "ListMembership.list_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "ListMembership.lead_id"`)}
	}
	if v, ok := _c.mutation.LeadID(); ok {
		if err := listmembership.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "ListMembership.lead_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ListMembership.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := listmembership.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ListMembership.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ListMembershipCreate) sqlSave(ctx context.Context) (*ListMembership, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ListMembership.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ListMembershipCreate) createSpec() (*ListMembership, *sqlgraph.CreateSpec) {
	var (
		_node = &ListMembership{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(listmembership.Table, sqlgraph.NewFieldSpec(listmembership.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ListID(); ok {
		_spec.SetField(listmembership.FieldListID, field.TypeString, value)
		_node.ListID = value
	}
	if value, ok := _c.mutation.LeadID(); ok {
		_spec.SetField(listmembership.FieldLeadID, field.TypeString, value)
		_node.LeadID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(listmembership.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ListMembershipCreateBulk is the builder for creating many ListMembership entities in bulk.
type ListMembershipCreateBulk struct {
	config
	err      error
	builders []*ListMembershipCreate
}

// Save creates the ListMembership entities in the database.
func (_c *ListMembershipCreateBulk) Save(ctx context.Context) ([]*ListMembership, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ListMembership, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ListMembershipMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ListMembershipCreateBulk) SaveX(ctx context.Context) []*ListMembership {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListMembershipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListMembershipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
