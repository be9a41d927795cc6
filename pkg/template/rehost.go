package template

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/waflow/waflow/pkg/provider"
	"github.com/waflow/waflow/pkg/trace"
)

// MediaFetcher is the slice of the provider client rehosting needs.
type MediaFetcher interface {
	FetchMedia(ctx context.Context, mediaID string, force bool) (*provider.Media, error)
}

// Rehoster refreshes stale header media URLs after the provider rejects
// a send with media_expired. One refresh, one retry; a second expiry
// escalates to policy_rejected so callers never loop.
type Rehoster struct {
	fetcher MediaFetcher
	tracer  trace.Emitter
}

// NewRehoster creates a Rehoster.
func NewRehoster(fetcher MediaFetcher, tracer trace.Emitter) *Rehoster {
	if tracer == nil {
		tracer = trace.Nop{}
	}
	return &Rehoster{fetcher: fetcher, tracer: tracer}
}

// Refresh force-fetches a new URL for the template's header media.
// Templates without a media header return ("", false) and the caller
// must not retry the send.
func (r *Rehoster) Refresh(ctx context.Context, campaignID string, spec Spec) (string, bool, error) {
	mediaID := HeaderMediaID(spec)
	if mediaID == "" {
		r.tracer.Emit(ctx, trace.Event{
			CampaignID: campaignID,
			Phase:      trace.PhaseRehostSkip,
			OK:         false,
			Extra:      map[string]interface{}{"template": spec.Name, "reason": "no_media_header"},
		})
		return "", false, nil
	}

	start := time.Now()
	r.tracer.Emit(ctx, trace.Event{
		CampaignID: campaignID,
		Phase:      trace.PhaseRehostStart,
		OK:         true,
		Extra:      map[string]interface{}{"template": spec.Name, "media_id": mediaID},
	})

	media, err := r.fetcher.FetchMedia(ctx, mediaID, true)
	if err != nil {
		r.tracer.Emit(ctx, trace.Event{
			CampaignID: campaignID,
			Phase:      trace.PhaseRehostFail,
			OK:         false,
			Duration:   time.Since(start),
			Extra:      map[string]interface{}{"template": spec.Name, "error": err.Error()},
		})
		return "", false, fmt.Errorf("refreshing media %s: %w", mediaID, err)
	}

	slog.Info("Rehosted template media",
		"template", spec.Name,
		"media_id", mediaID,
		"expires_at", media.ExpiresAt)
	r.tracer.Emit(ctx, trace.Event{
		CampaignID: campaignID,
		Phase:      trace.PhaseRehostOK,
		OK:         true,
		Duration:   time.Since(start),
		Extra:      map[string]interface{}{"template": spec.Name, "media_id": mediaID},
	})
	return media.URL, true, nil
}
