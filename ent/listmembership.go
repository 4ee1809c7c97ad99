// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/GitNimay/lumino-crm-vc/ent/listmembership"
)

// ListMembership is the model entity for the ListMembership schema.
type ListMembership struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ListID holds the value of the "list_id" field.
	ListID string `json:"list_id,omitempty"`
	// LeadID holds the value of the "lead_id" field.
	LeadID string `json:"lead_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ListMembership) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case listmembership.FieldID, listmembership.FieldListID, listmembership.FieldLeadID:
			values[i] = new(sql.NullString)
		case listmembership.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ListMembership fields.
func (_m *ListMembership) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case listmembership.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case listmembership.FieldListID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field list_id", values[i])
			} else if value.Valid {
				_m.ListID = value.String
			}
		case listmembership.FieldLeadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = value.String
			}
		case listmembership.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ListMembership.
// This includes values selected through modifiers, order, etc.
func (_m *ListMembership) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ListMembership.
// Note that you need to call ListMembership.Unwrap() before calling this method if this ListMembership
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ListMembership) Update() *ListMembershipUpdateOne {
	return NewListMembershipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ListMembership entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ListMembership) Unwrap() *ListMembership {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ListMembership is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ListMembership) String() string {
	var builder strings.Builder
	builder.WriteString("ListMembership(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("list_id=")
	builder.WriteString(_m.ListID)
	builder.WriteString(", ")
	builder.WriteString("lead_id=")
	builder.WriteString(_m.LeadID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ListMemberships is a parsable slice of ListMembership.
type ListMemberships []*ListMembership
