package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/vectordb"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// WorkspaceService manages workspaces and their owned database declarations.
type WorkspaceService struct {
	client *ent.Client
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(client *ent.Client) *WorkspaceService {
	return &WorkspaceService{client: client}
}

// CreateWorkspaceRequest declares a new workspace.
type CreateWorkspaceRequest struct {
	Name         string
	DefaultModel string
	Language     string
	AgentSlots   map[string]string
	Users        []string
}

// CreateWorkspace creates a workspace.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, req CreateWorkspaceRequest) (*ent.Workspace, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.DefaultModel == "" {
		return nil, NewValidationError("default_model", "required")
	}

	builder := s.client.Workspace.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetDefaultModel(req.DefaultModel).
		SetAgentSlots(req.AgentSlots).
		SetUsers(req.Users)
	if req.Language != "" {
		builder = builder.SetLanguage(req.Language)
	}

	ws, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: workspace %q", ErrAlreadyExists, req.Name)
		}
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return ws, nil
}

// GetWorkspace retrieves a workspace by ID.
func (s *WorkspaceService) GetWorkspace(ctx context.Context, id string) (*ent.Workspace, error) {
	ws, err := s.client.Workspace.Query().
		Where(workspace.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: workspace %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return ws, nil
}

// ListWorkspaces returns all workspaces ordered by name.
func (s *WorkspaceService) ListWorkspaces(ctx context.Context) ([]*ent.Workspace, error) {
	return s.client.Workspace.Query().
		Order(ent.Asc(workspace.FieldName)).
		All(ctx)
}

// AttachSqlDb links a SqlDb to the workspace, replacing any previous link.
// When the SqlDb references a VectorDb already owned by another SqlDb, the
// previous owner is unset first.
func (s *WorkspaceService) AttachSqlDb(ctx context.Context, workspaceID, sqlDbID string) error {
	// UpdateOneID surfaces a missing workspace as an FK constraint error when
	// setting the edge, so existence is checked up front.
	exists, err := s.client.Workspace.Query().
		Where(workspace.IDEQ(workspaceID)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: workspace %s", ErrNotFound, workspaceID)
	}

	db, err := s.client.SqlDb.Query().
		Where(sqldb.IDEQ(sqlDbID)).
		WithVectorDb().
		Only(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: sql db %s", ErrNotFound, sqlDbID)
	}
	if err != nil {
		return err
	}

	if vdb := db.Edges.VectorDb; vdb != nil {
		owners, err := s.client.SqlDb.Query().
			Where(
				sqldb.HasVectorDbWith(vectordb.IDEQ(vdb.ID)),
				sqldb.IDNEQ(sqlDbID),
			).
			All(ctx)
		if err != nil {
			return err
		}
		for _, owner := range owners {
			if err := owner.Update().ClearVectorDb().Exec(ctx); err != nil {
				return fmt.Errorf("failed to unset previous vector db owner: %w", err)
			}
		}
	}

	err = s.client.Workspace.UpdateOneID(workspaceID).
		SetSQLDbID(sqlDbID).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: workspace %s", ErrNotFound, workspaceID)
	}
	return err
}

// TouchPreprocess records a completed preprocessing run.
func (s *WorkspaceService) TouchPreprocess(ctx context.Context, workspaceID string) error {
	return s.touch(ctx, workspaceID, func(u *ent.WorkspaceUpdateOne) {
		u.SetLastPreprocess(time.Now())
	})
}

// TouchEvidenceLoad records a completed evidence upload.
func (s *WorkspaceService) TouchEvidenceLoad(ctx context.Context, workspaceID string) error {
	return s.touch(ctx, workspaceID, func(u *ent.WorkspaceUpdateOne) {
		u.SetLastEvidenceLoad(time.Now())
	})
}

// TouchSQLLoad records a completed question corpus upload.
func (s *WorkspaceService) TouchSQLLoad(ctx context.Context, workspaceID string) error {
	return s.touch(ctx, workspaceID, func(u *ent.WorkspaceUpdateOne) {
		u.SetLastSQLLoaded(time.Now())
	})
}

func (s *WorkspaceService) touch(ctx context.Context, workspaceID string, apply func(*ent.WorkspaceUpdateOne)) error {
	u := s.client.Workspace.UpdateOneID(workspaceID)
	apply(u)
	err := u.Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: workspace %s", ErrNotFound, workspaceID)
	}
	return err
}
