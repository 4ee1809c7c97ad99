// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/GitNimay/lumino-crm-vc/ent/lead"
	"github.com/GitNimay/lumino-crm-vc/ent/list"
	"github.com/GitNimay/lumino-crm-vc/ent/listmembership"
	"github.com/GitNimay/lumino-crm-vc/ent/schema"
	"github.com/GitNimay/lumino-crm-vc/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescOwnerID is the schema descriptor for owner_id field.
	leadDescOwnerID := leadFields[1].Descriptor()
	// lead.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	lead.OwnerIDValidator = leadDescOwnerID.Validators[0].(func(string) error)
	// leadDescName is the schema descriptor for name field.
	leadDescName := leadFields[2].Descriptor()
	// lead.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lead.NameValidator = leadDescName.Validators[0].(func(string) error)
	// leadDescCompany is the schema descriptor for company field.
	leadDescCompany := leadFields[3].Descriptor()
	// lead.CompanyValidator is a validator for the "company" field. It is called by the builders before save.
	lead.CompanyValidator = leadDescCompany.Validators[0].(func(string) error)
	// leadDescValue is the schema descriptor for value field.
	leadDescValue := leadFields[6].Descriptor()
	// lead.DefaultValue holds the default value on creation for the value field.
	lead.DefaultValue = leadDescValue.Default.(float64)
	// lead.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	lead.ValueValidator = leadDescValue.Validators[0].(func(float64) error)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[11].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescLastActivity is the schema descriptor for last_activity field.
	leadDescLastActivity := leadFields[12].Descriptor()
	// lead.DefaultLastActivity holds the default value on creation for the last_activity field.
	lead.DefaultLastActivity = leadDescLastActivity.Default.(func() time.Time)
	// leadDescID is the schema descriptor for id field.
	leadDescID := leadFields[0].Descriptor()
	// lead.DefaultID holds the default value on creation for the id field.
	lead.DefaultID = leadDescID.Default.(func() string)
	// lead.IDValidator is a validator for the "id" field. It is called by the builders before save.
	lead.IDValidator = leadDescID.Validators[0].(func(string) error)
	listFields := schema.List{}.Fields()
	_ = listFields
	// listDescOwnerID is the schema descriptor for owner_id field.
	listDescOwnerID := listFields[1].Descriptor()
	// list.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	list.OwnerIDValidator = listDescOwnerID.Validators[0].(func(string) error)
	// listDescName is the schema descriptor for name field.
	listDescName := listFields[2].Descriptor()
	// list.NameValidator is a validator for the "name" field. It is called by the builders before save.
	list.NameValidator = listDescName.Validators[0].(func(string) error)
	// listDescCreatedAt is the schema descriptor for created_at field.
	listDescCreatedAt := listFields[4].Descriptor()
	// list.DefaultCreatedAt holds the default value on creation for the created_at field.
	list.DefaultCreatedAt = listDescCreatedAt.Default.(func() time.Time)
	// listDescID is the schema descriptor for id field.
	listDescID := listFields[0].Descriptor()
	// list.DefaultID holds the default value on creation for the id field.
	list.DefaultID = listDescID.Default.(func() string)
	// list.IDValidator is a validator for the "id" field. It is called by the builders before save.
	list.IDValidator = listDescID.Validators[0].(func(string) error)
	listmembershipFields := schema.ListMembership{}.Fields()
	_ = listmembershipFields
	// listmembershipDescListID is the schema descriptor for list_id field.
	listmembershipDescListID := listmembershipFields[1].Descriptor()
	// listmembership.ListIDValidator is a validator for the "list_id" field. It is called by the builders before save.
	listmembership.ListIDValidator = listmembershipDescListID.Validators[0].(func(string) error)
	// listmembershipDescLeadID is the schema descriptor for lead_id field.
	listmembershipDescLeadID := listmembershipFields[2].Descriptor()
	// listmembership.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	listmembership.LeadIDValidator = listmembershipDescLeadID.Validators[0].(func(string) error)
	// listmembershipDescCreatedAt is the schema descriptor for created_at field.
	listmembershipDescCreatedAt := listmembershipFields[3].Descriptor()
	// listmembership.DefaultCreatedAt holds the default value on creation for the created_at field.
	listmembership.DefaultCreatedAt = listmembershipDescCreatedAt.Default.(func() time.Time)
	// listmembershipDescID is the schema descriptor for id field.
	listmembershipDescID := listmembershipFields[0].Descriptor()
	// listmembership.DefaultID holds the default value on creation for the id field.
	listmembership.DefaultID = listmembershipDescID.Default.(func() string)
	// listmembership.IDValidator is a validator for the "id" field. It is called by the builders before save.
	listmembership.IDValidator = listmembershipDescID.Validators[0].(func(string) error)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescOwnerID is the schema descriptor for owner_id field.
	taskDescOwnerID := taskFields[1].Descriptor()
	// task.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	task.OwnerIDValidator = taskDescOwnerID.Validators[0].(func(string) error)
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[2].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[8].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() string)
	// task.IDValidator is a validator for the "id" field. It is called by the builders before save.
	task.IDValidator = taskDescID.Validators[0].(func(string) error)
}
