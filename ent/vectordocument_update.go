// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/predicate"
	"github.com/thoth-ai/thoth/ent/vectordocument"
)

// VectorDocumentUpdate is the builder for updating VectorDocument entities.
type VectorDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *VectorDocumentMutation
}

// Where appends a list predicates to the VectorDocumentUpdate builder.
func (_u *VectorDocumentUpdate) Where(ps ...predicate.VectorDocument) *VectorDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCollection sets the "collection" field.
func (_u *VectorDocumentUpdate) SetCollection(v string) *VectorDocumentUpdate {
	_u.mutation.SetCollection(v)
	return _u
}

// SetNillableCollection sets the "collection" field if the given value is not nil.
func (_u *VectorDocumentUpdate) SetNillableCollection(v *string) *VectorDocumentUpdate {
	if v != nil {
		_u.SetCollection(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *VectorDocumentUpdate) SetDocType(v vectordocument.DocType) *VectorDocumentUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *VectorDocumentUpdate) SetNillableDocType(v *vectordocument.DocType) *VectorDocumentUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *VectorDocumentUpdate) SetContent(v string) *VectorDocumentUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *VectorDocumentUpdate) SetNillableContent(v *string) *VectorDocumentUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *VectorDocumentUpdate) SetFields(v map[string]interface{}) *VectorDocumentUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *VectorDocumentUpdate) ClearFields() *VectorDocumentUpdate {
	_u.mutation.ClearFields()
	return _u
}

// Mutation returns the VectorDocumentMutation object of the builder.
func (_u *VectorDocumentUpdate) Mutation() *VectorDocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VectorDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VectorDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VectorDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VectorDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VectorDocumentUpdate) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := vectordocument.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "VectorDocument.doc_type": %w`, err)}
		}
	}
	return nil
}

func (_u *VectorDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vectordocument.Table, vectordocument.Columns, sqlgraph.NewFieldSpec(vectordocument.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Collection(); ok {
		_spec.SetField(vectordocument.FieldCollection, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(vectordocument.FieldDocType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(vectordocument.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(vectordocument.FieldFields, field.TypeJSON, value)
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(vectordocument.FieldFields, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vectordocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VectorDocumentUpdateOne is the builder for updating a single VectorDocument entity.
type VectorDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VectorDocumentMutation
}

// SetCollection sets the "collection" field.
func (_u *VectorDocumentUpdateOne) SetCollection(v string) *VectorDocumentUpdateOne {
	_u.mutation.SetCollection(v)
	return _u
}

// SetNillableCollection sets the "collection" field if the given value is not nil.
func (_u *VectorDocumentUpdateOne) SetNillableCollection(v *string) *VectorDocumentUpdateOne {
	if v != nil {
		_u.SetCollection(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *VectorDocumentUpdateOne) SetDocType(v vectordocument.DocType) *VectorDocumentUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *VectorDocumentUpdateOne) SetNillableDocType(v *vectordocument.DocType) *VectorDocumentUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *VectorDocumentUpdateOne) SetContent(v string) *VectorDocumentUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *VectorDocumentUpdateOne) SetNillableContent(v *string) *VectorDocumentUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *VectorDocumentUpdateOne) SetFields(v map[string]interface{}) *VectorDocumentUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *VectorDocumentUpdateOne) ClearFields() *VectorDocumentUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// Mutation returns the VectorDocumentMutation object of the builder.
func (_u *VectorDocumentUpdateOne) Mutation() *VectorDocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the VectorDocumentUpdate builder.
func (_u *VectorDocumentUpdateOne) Where(ps ...predicate.VectorDocument) *VectorDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VectorDocumentUpdateOne) Select(field string, fields ...string) *VectorDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VectorDocument entity.
func (_u *VectorDocumentUpdateOne) Save(ctx context.Context) (*VectorDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VectorDocumentUpdateOne) SaveX(ctx context.Context) *VectorDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VectorDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VectorDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VectorDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := vectordocument.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "VectorDocument.doc_type": %w`, err)}
		}
	}
	return nil
}

func (_u *VectorDocumentUpdateOne) sqlSave(ctx context.Context) (_node *VectorDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vectordocument.Table, vectordocument.Columns, sqlgraph.NewFieldSpec(vectordocument.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VectorDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vectordocument.FieldID)
		for _, f := range fields {
			if !vectordocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vectordocument.FieldID {
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
	if value, ok := _u.mutation.Collection(); ok {
		_spec.SetField(vectordocument.FieldCollection, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(vectordocument.FieldDocType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(vectordocument.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(vectordocument.FieldFields, field.TypeJSON, value)
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(vectordocument.FieldFields, field.TypeJSON)
	}
	_node = &VectorDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vectordocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
