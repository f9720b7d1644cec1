// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/vectordocument"
)

// VectorDocumentCreate is the builder for creating a VectorDocument entity.
type VectorDocumentCreate struct {
	config
	mutation *VectorDocumentMutation
	hooks    []Hook
}

// SetCollection sets the "collection" field.
func (_c *VectorDocumentCreate) SetCollection(v string) *VectorDocumentCreate {
	_c.mutation.SetCollection(v)
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *VectorDocumentCreate) SetDocType(v vectordocument.DocType) *VectorDocumentCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *VectorDocumentCreate) SetContent(v string) *VectorDocumentCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetFields sets the "fields" field.
func (_c *VectorDocumentCreate) SetFields(v map[string]interface{}) *VectorDocumentCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VectorDocumentCreate) SetCreatedAt(v time.Time) *VectorDocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VectorDocumentCreate) SetNillableCreatedAt(v *time.Time) *VectorDocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VectorDocumentCreate) SetID(v string) *VectorDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the VectorDocumentMutation object of the builder.
func (_c *VectorDocumentCreate) Mutation() *VectorDocumentMutation {
	return _c.mutation
}

// Save creates the VectorDocument in the database.
func (_c *VectorDocumentCreate) Save(ctx context.Context) (*VectorDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VectorDocumentCreate) SaveX(ctx context.Context) *VectorDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VectorDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VectorDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VectorDocumentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vectordocument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VectorDocumentCreate) check() error {
	if _, ok := _c.mutation.Collection(); !ok {
		return &ValidationError{Name: "collection", err: errors.New(`ent: missing required field "VectorDocument.collection"`)}
	}
	if _, ok := _c.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "VectorDocument.doc_type"`)}
	}
	if v, ok := _c.mutation.DocType(); ok {
		if err := vectordocument.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "VectorDocument.doc_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "VectorDocument.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VectorDocument.created_at"`)}
	}
	return nil
}

func (_c *VectorDocumentCreate) sqlSave(ctx context.Context) (*VectorDocument, error) {
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
			return nil, fmt.Errorf("unexpected VectorDocument.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VectorDocumentCreate) createSpec() (*VectorDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &VectorDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vectordocument.Table, sqlgraph.NewFieldSpec(vectordocument.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Collection(); ok {
		_spec.SetField(vectordocument.FieldCollection, field.TypeString, value)
		_node.Collection = value
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(vectordocument.FieldDocType, field.TypeEnum, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(vectordocument.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(vectordocument.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vectordocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VectorDocumentCreateBulk is the builder for creating many VectorDocument entities in bulk.
type VectorDocumentCreateBulk struct {
	config
	err      error
	builders []*VectorDocumentCreate
}

// Save creates the VectorDocument entities in the database.
func (_c *VectorDocumentCreateBulk) Save(ctx context.Context) ([]*VectorDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VectorDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VectorDocumentMutation)
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
func (_c *VectorDocumentCreateBulk) SaveX(ctx context.Context) []*VectorDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VectorDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VectorDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
