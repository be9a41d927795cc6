package api

import (
	"time"

	"github.com/waflow/waflow/pkg/engine"
	"github.com/waflow/waflow/pkg/models"
)

// CreateWorkflowRequest is the body of POST /api/v1/workflows.
type CreateWorkflowRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Visibility  string       `json:"visibility,omitempty"`
	Graph       models.Graph `json:"graph"`
}

// SaveDraftRequest is the body of PUT /api/v1/workflows/:id/graph.
type SaveDraftRequest struct {
	Graph models.Graph `json:"graph"`
}

// PublishRequest is the body of POST /api/v1/workflows/:id/publish.
type PublishRequest struct {
	VersionID string `json:"versionId"`
}

// RunWorkflowRequest is the body of POST /workflow/run.
type RunWorkflowRequest struct {
	WorkflowID       string                 `json:"workflowId"`
	Input            map[string]interface{} `json:"input,omitempty"`
	StartNodeIDs     []string               `json:"startNodeIds,omitempty"`
	InitialVariables map[string]interface{} `json:"initialVariables,omitempty"`
}

// ResumeWorkflowRequest is the body of POST /workflow/:id/resume.
type ResumeWorkflowRequest struct {
	WorkflowID     string             `json:"workflowId"`
	ConversationID string             `json:"conversationId"`
	Input          engine.ResumeInput `json:"input"`
}

// ContactPayload is one recipient in campaign and precheck bodies.
type ContactPayload struct {
	ContactID    string                 `json:"contactId,omitempty"`
	Phone        string                 `json:"phone"`
	Name         string                 `json:"name,omitempty"`
	Email        string                 `json:"email,omitempty"`
	CustomFields map[string]interface{} `json:"customFields,omitempty"`
}

// CreateCampaignRequest is the body of POST /api/v1/campaigns.
type CreateCampaignRequest struct {
	Name              string            `json:"name"`
	TemplateName      string            `json:"templateName"`
	TemplateVariables map[string]string `json:"templateVariables,omitempty"`
	ScheduledAt       *time.Time        `json:"scheduledAt,omitempty"`
	Contacts          []ContactPayload  `json:"contacts"`
}

// PrecheckRequest is the body of POST /campaigns/precheck.
type PrecheckRequest struct {
	TemplateName      string            `json:"templateName"`
	Contacts          []ContactPayload  `json:"contacts"`
	TemplateVariables map[string]string `json:"templateVariables,omitempty"`
}

// UpsertTemplateRequest is the body of POST /api/v1/templates.
type UpsertTemplateRequest struct {
	Name            string                     `json:"name"`
	Language        string                     `json:"language"`
	Category        string                     `json:"category,omitempty"`
	ParameterFormat string                     `json:"parameterFormat,omitempty"`
	Components      []models.TemplateComponent `json:"components,omitempty"`
}
