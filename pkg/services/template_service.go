package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/waflow/waflow/ent"
	enttemplate "github.com/waflow/waflow/ent/template"
	"github.com/waflow/waflow/pkg/models"
	wtemplate "github.com/waflow/waflow/pkg/template"
)

// TemplateService is the local registry of provider templates precheck
// reads its variable requirements from.
type TemplateService struct {
	client *ent.Client
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(client *ent.Client) *TemplateService {
	return &TemplateService{client: client}
}

// UpsertTemplateRequest mirrors the provider's registered template shape.
type UpsertTemplateRequest struct {
	Name            string
	Language        string
	Category        string
	ParameterFormat models.ParameterFormat
	Components      []models.TemplateComponent
}

// Upsert creates or replaces a template keyed by (name, language).
func (s *TemplateService) Upsert(ctx context.Context, req UpsertTemplateRequest) (*ent.Template, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Language == "" {
		return nil, NewValidationError("language", "required")
	}
	format := req.ParameterFormat
	if format == "" {
		format = models.ParameterPositional
	}

	existing, err := s.client.Template.Query().
		Where(
			enttemplate.NameEQ(req.Name),
			enttemplate.LanguageEQ(req.Language),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("querying template: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetCategory(req.Category).
			SetParameterFormat(enttemplate.ParameterFormat(format)).
			SetComponents(req.Components).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("updating template: %w", err)
		}
		return updated, nil
	}

	created, err := s.client.Template.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetLanguage(req.Language).
		SetCategory(req.Category).
		SetParameterFormat(enttemplate.ParameterFormat(format)).
		SetComponents(req.Components).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}
	return created, nil
}

// GetByName returns the first template registered under a name, any
// language. Campaigns reference templates by bare name.
func (s *TemplateService) GetByName(ctx context.Context, name string) (*ent.Template, error) {
	row, err := s.client.Template.Query().
		Where(enttemplate.NameEQ(name)).
		Order(ent.Asc(enttemplate.FieldLanguage)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying template: %w", err)
	}
	return row, nil
}

// List returns all templates ordered by name.
func (s *TemplateService) List(ctx context.Context) ([]*ent.Template, error) {
	rows, err := s.client.Template.Query().
		Order(ent.Asc(enttemplate.FieldName), ent.Asc(enttemplate.FieldLanguage)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return rows, nil
}

// SpecFor converts a stored template into the precheck view.
func SpecFor(t *ent.Template) wtemplate.Spec {
	return wtemplate.Spec{
		Name:            t.Name,
		Language:        t.Language,
		ParameterFormat: models.ParameterFormat(t.ParameterFormat),
		Components:      t.Components,
	}
}
