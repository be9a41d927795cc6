package template

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waflow/waflow/pkg/models"
	"github.com/waflow/waflow/pkg/provider"
	"github.com/waflow/waflow/pkg/trace"
)

type fakeFetcher struct {
	media *provider.Media
	err   error

	calls []string
	force []bool
}

func (f *fakeFetcher) FetchMedia(_ context.Context, mediaID string, force bool) (*provider.Media, error) {
	f.calls = append(f.calls, mediaID)
	f.force = append(f.force, force)
	if f.err != nil {
		return nil, f.err
	}
	return f.media, nil
}

type recordingTracer struct {
	mu     sync.Mutex
	events []trace.Event
}

func (r *recordingTracer) Emit(_ context.Context, ev trace.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingTracer) phases() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Phase)
	}
	return out
}

func mediaSpec() Spec {
	return Spec{
		Name:            "promo_media",
		Language:        "pt_BR",
		ParameterFormat: models.ParameterPositional,
		Components: []models.TemplateComponent{
			{Type: "HEADER", Format: "IMAGE", MediaID: "media-1", MediaURL: "https://old.example/img"},
			{Type: "BODY", Text: "Oferta {{1}}"},
		},
	}
}

func TestRehosterRefresh(t *testing.T) {
	fetcher := &fakeFetcher{media: &provider.Media{
		ID:        "media-1",
		URL:       "https://fresh.example/img",
		ExpiresAt: time.Now().Add(4 * time.Minute),
	}}
	tracer := &recordingTracer{}
	r := NewRehoster(fetcher, tracer)

	url, ok, err := r.Refresh(context.Background(), "camp-1", mediaSpec())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://fresh.example/img", url)

	require.Equal(t, []string{"media-1"}, fetcher.calls)
	assert.Equal(t, []bool{true}, fetcher.force, "rehost must bypass the media cache")
	assert.Equal(t, []string{trace.PhaseRehostStart, trace.PhaseRehostOK}, tracer.phases())
}

func TestRehosterRefreshFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("fetch failed")}
	tracer := &recordingTracer{}
	r := NewRehoster(fetcher, tracer)

	_, ok, err := r.Refresh(context.Background(), "camp-1", mediaSpec())
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{trace.PhaseRehostStart, trace.PhaseRehostFail}, tracer.phases())
}

func TestRehosterSkipsTextTemplates(t *testing.T) {
	fetcher := &fakeFetcher{}
	tracer := &recordingTracer{}
	r := NewRehoster(fetcher, tracer)

	spec := Spec{
		Name:       "plain",
		Components: []models.TemplateComponent{{Type: "BODY", Text: "Oi {{1}}"}},
	}
	url, ok, err := r.Refresh(context.Background(), "camp-1", spec)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, url)
	assert.Empty(t, fetcher.calls)
	assert.Equal(t, []string{trace.PhaseRehostSkip}, tracer.phases())
}

func TestBuildComponents(t *testing.T) {
	spec := mediaSpec()
	comps := BuildComponents(spec, map[string]string{"1": "50% off"}, "https://fresh.example/img")
	require.Len(t, comps, 2)

	assert.Equal(t, "header", comps[0].Type)
	require.Len(t, comps[0].Parameters, 1)
	assert.Equal(t, "image", comps[0].Parameters[0].Type)
	assert.Equal(t, "https://fresh.example/img", comps[0].Parameters[0].Image.Link)

	assert.Equal(t, "body", comps[1].Type)
	require.Len(t, comps[1].Parameters, 1)
	assert.Equal(t, "50% off", comps[1].Parameters[0].Text)
}

func TestBuildComponentsNamed(t *testing.T) {
	spec := Spec{
		Name:            "order_update",
		ParameterFormat: models.ParameterNamed,
		Components: []models.TemplateComponent{
			{Type: "BODY", Text: "Pedido {{order_id}} para {{first_name}}"},
		},
	}
	comps := BuildComponents(spec, map[string]string{"order_id": "A42", "first_name": "Ana"}, "")
	require.Len(t, comps, 1)
	require.Len(t, comps[0].Parameters, 2)
	assert.Equal(t, "order_id", comps[0].Parameters[0].ParameterName)
	assert.Equal(t, "A42", comps[0].Parameters[0].Text)
	assert.Equal(t, "first_name", comps[0].Parameters[1].ParameterName)
}
