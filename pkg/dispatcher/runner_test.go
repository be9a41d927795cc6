package dispatcher

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waflow/waflow/pkg/config"
	"github.com/waflow/waflow/pkg/models"
	"github.com/waflow/waflow/pkg/provider"
	"github.com/waflow/waflow/pkg/template"
)

// --- fakes -----------------------------------------------------------------

type fakeRow struct {
	Contact
	status   models.ContactStatus
	skipCode string
	errMsg   string
	attempts int
}

type fakeStore struct {
	mu     sync.Mutex
	status string
	rows   []*fakeRow

	// cancelAfterBatches flips the campaign to cancelled once this many
	// claims have happened (0 disables).
	cancelAfterBatches int
	claims             int

	finalized string
}

func newFakeStore(status string, phones ...string) *fakeStore {
	s := &fakeStore{status: status}
	for i, phone := range phones {
		s.rows = append(s.rows, &fakeRow{
			Contact: Contact{
				RowID:     fmt.Sprintf("row-%d", i),
				ContactID: fmt.Sprintf("contact-%d", i),
				Phone:     phone,
				Name:      "Ana",
			},
			status: models.ContactPending,
		})
	}
	return s
}

func (s *fakeStore) ClaimCampaign(context.Context, string, time.Time) (*Campaign, error) {
	return nil, ErrNoCampaigns
}

func (s *fakeStore) Heartbeat(context.Context, string, string) error { return nil }
func (s *fakeStore) Release(context.Context, string, string) error   { return nil }

func (s *fakeStore) CampaignStatus(context.Context, string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, nil
}

func (s *fakeStore) ClaimPending(_ context.Context, _ string, batchSize int) ([]Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var claimed []Contact
	for _, row := range s.rows {
		if len(claimed) >= batchSize {
			break
		}
		if row.status == models.ContactPending {
			row.status = models.ContactSending
			claimed = append(claimed, row.Contact)
		}
	}
	if len(claimed) > 0 {
		s.claims++
		if s.cancelAfterBatches > 0 && s.claims >= s.cancelAfterBatches {
			s.status = StatusCancelled
		}
	}
	return claimed, nil
}

func (s *fakeStore) MarkResult(_ context.Context, rowID string, result Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.row(rowID)
	if row == nil {
		return fmt.Errorf("row %s not found", rowID)
	}
	row.status = result.Status
	row.skipCode = result.SkipCode
	row.errMsg = result.Error
	return nil
}

func (s *fakeStore) Requeue(_ context.Context, rowID string, budget int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.row(rowID)
	if row == nil {
		return false, fmt.Errorf("row %s not found", rowID)
	}
	row.attempts++
	if row.attempts >= budget {
		row.status = models.ContactFailed
		row.errMsg = "rate_limited"
		return false, nil
	}
	row.status = models.ContactPending
	return true, nil
}

func (s *fakeStore) FinalizeIfDone(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.status == models.ContactPending || row.status == models.ContactSending {
			return "", nil
		}
	}
	sent := 0
	failed := 0
	for _, row := range s.rows {
		switch row.status {
		case models.ContactSent, models.ContactDelivered, models.ContactRead:
			sent++
		case models.ContactFailed:
			failed++
		}
	}
	s.finalized = StatusCompleted
	if sent == 0 && failed > 0 {
		s.finalized = StatusFailed
	}
	s.status = s.finalized
	return s.finalized, nil
}

func (s *fakeStore) MaterializeScheduled(context.Context, time.Time) ([]string, error) {
	return nil, nil
}

func (s *fakeStore) ReapStaleSending(context.Context, time.Time) (int, error) { return 0, nil }

func (s *fakeStore) row(id string) *fakeRow {
	for _, row := range s.rows {
		if row.RowID == id {
			return row
		}
	}
	return nil
}

func (s *fakeStore) countByStatus(status models.ContactStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, row := range s.rows {
		if row.status == status {
			n++
		}
	}
	return n
}

type fakeTemplates struct {
	spec template.Spec
}

func (f *fakeTemplates) SpecByName(context.Context, string) (template.Spec, error) {
	return f.spec, nil
}

// fakeSender scripts per-call outcomes keyed by call order; after the
// script runs out every send succeeds.
type fakeSender struct {
	mu     sync.Mutex
	script []provider.ErrorClass
	calls  int
	urls   []string
}

func (f *fakeSender) SendTemplate(_ context.Context, _ string, _ template.Spec, _ map[string]string, mediaURL string) (*provider.SendResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.urls = append(f.urls, mediaURL)

	class := provider.ClassOK
	if f.calls-1 < len(f.script) {
		class = f.script[f.calls-1]
	}
	if class == provider.ClassOK {
		return &provider.SendResult{OK: true, MessageID: fmt.Sprintf("wamid.%d", f.calls), Class: provider.ClassOK}, nil
	}
	return &provider.SendResult{Class: class}, &provider.Error{Class: class}
}

type fakeTurbo struct {
	mu          sync.Mutex
	cfg         config.TurboConfig
	oks         int
	rateLimited int
}

func (f *fakeTurbo) Acquire(context.Context, string) error { return nil }

func (f *fakeTurbo) ReportOK(context.Context, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.oks++
}

func (f *fakeTurbo) ReportRateLimited(context.Context, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rateLimited++
}

func (f *fakeTurbo) Config() config.TurboConfig { return f.cfg }

type fakeRehoster struct {
	url   string
	ok    bool
	calls int
}

func (f *fakeRehoster) Refresh(context.Context, string, template.Spec) (string, bool, error) {
	f.calls++
	return f.url, f.ok, nil
}

// --- helpers ---------------------------------------------------------------

func plainSpec() template.Spec {
	return template.Spec{
		Name:            "promo",
		Language:        "pt_BR",
		ParameterFormat: models.ParameterPositional,
		Components:      []models.TemplateComponent{{Type: "BODY", Text: "Oi {{1}}"}},
	}
}

func testRunner(store *fakeStore, sender *fakeSender, turbo *fakeTurbo, rehoster Rehoster) *Runner {
	cfg := config.DefaultDispatcherConfig()
	cfg.PollInterval = time.Millisecond
	cfg.RateLimitedRequeueBudget = 3
	r := NewRunner(store, &fakeTemplates{spec: plainSpec()}, sender, turbo, rehoster, nil, cfg, "sender-1", "pod-1")
	r.sleep = func(context.Context, time.Duration) error { return nil }
	return r
}

func testCampaign() *Campaign {
	return &Campaign{
		ID:                "camp-1",
		Name:              "June promo",
		TemplateName:      "promo",
		TemplateVariables: map[string]string{"1": "contact.name"},
	}
}

func turboCfg(batch, conc int) config.TurboConfig {
	cfg := config.DefaultTurboConfig()
	cfg.BatchSize = batch
	cfg.SendConcurrency = conc
	return cfg
}

// --- tests -----------------------------------------------------------------

func TestRunnerHappyPath(t *testing.T) {
	store := newFakeStore(StatusSending,
		"+5511987654321", "+5511987654322", "+5511987654323")
	sender := &fakeSender{}
	turbo := &fakeTurbo{cfg: turboCfg(2, 2)}
	r := testRunner(store, sender, turbo, &fakeRehoster{})

	require.NoError(t, r.Run(context.Background(), testCampaign()))

	assert.Equal(t, 3, store.countByStatus(models.ContactSent))
	assert.Equal(t, StatusCompleted, store.finalized)
	assert.Equal(t, 3, turbo.oks)
}

func TestRunnerZeroRecipients(t *testing.T) {
	store := newFakeStore(StatusSending)
	r := testRunner(store, &fakeSender{}, &fakeTurbo{cfg: turboCfg(50, 4)}, &fakeRehoster{})

	require.NoError(t, r.Run(context.Background(), testCampaign()))
	assert.Equal(t, StatusCompleted, store.finalized, "empty campaigns complete with zero counters")
}

func TestRunnerPrecheckSkips(t *testing.T) {
	store := newFakeStore(StatusSending, "+5511987654321", "123")
	sender := &fakeSender{}
	r := testRunner(store, sender, &fakeTurbo{cfg: turboCfg(10, 2)}, &fakeRehoster{})

	require.NoError(t, r.Run(context.Background(), testCampaign()))

	assert.Equal(t, 1, store.countByStatus(models.ContactSent))
	assert.Equal(t, 1, store.countByStatus(models.ContactSkipped))
	assert.Equal(t, template.SkipInvalidPhone, store.row("row-1").skipCode)
	assert.Equal(t, 1, sender.calls, "skipped rows never reach the provider")
}

func TestRunnerRateLimitedRequeues(t *testing.T) {
	store := newFakeStore(StatusSending, "+5511987654321")
	// First attempt throttled, second succeeds.
	sender := &fakeSender{script: []provider.ErrorClass{provider.ClassRateLimited}}
	turbo := &fakeTurbo{cfg: turboCfg(10, 1)}
	r := testRunner(store, sender, turbo, &fakeRehoster{})

	require.NoError(t, r.Run(context.Background(), testCampaign()))

	assert.Equal(t, 1, store.countByStatus(models.ContactSent))
	assert.Equal(t, 1, turbo.rateLimited)
	assert.Equal(t, 1, turbo.oks)
	assert.Equal(t, 2, sender.calls)
}

func TestRunnerRateLimitedBudgetExhausted(t *testing.T) {
	store := newFakeStore(StatusSending, "+5511987654321")
	sender := &fakeSender{script: []provider.ErrorClass{
		provider.ClassRateLimited, provider.ClassRateLimited, provider.ClassRateLimited,
	}}
	turbo := &fakeTurbo{cfg: turboCfg(10, 1)}
	r := testRunner(store, sender, turbo, &fakeRehoster{})

	require.NoError(t, r.Run(context.Background(), testCampaign()))

	assert.Equal(t, 1, store.countByStatus(models.ContactFailed))
	assert.Equal(t, "rate_limited", store.row("row-0").errMsg)
	assert.Equal(t, StatusFailed, store.finalized, "uniformly failed campaigns end Failed")
}

func TestRunnerMediaRehostRetriesOnce(t *testing.T) {
	store := newFakeStore(StatusSending, "+5511987654321")
	sender := &fakeSender{script: []provider.ErrorClass{provider.ClassMediaExpired}}
	rehoster := &fakeRehoster{url: "https://fresh.example/img", ok: true}
	r := testRunner(store, sender, &fakeTurbo{cfg: turboCfg(10, 1)}, rehoster)

	require.NoError(t, r.Run(context.Background(), testCampaign()))

	assert.Equal(t, 1, rehoster.calls)
	assert.Equal(t, 2, sender.calls)
	assert.Equal(t, "https://fresh.example/img", sender.urls[1], "retry must carry the fresh URL")
	assert.Equal(t, 1, store.countByStatus(models.ContactSent))
}

func TestRunnerMediaRehostSecondExpiryEscalates(t *testing.T) {
	store := newFakeStore(StatusSending, "+5511987654321")
	sender := &fakeSender{script: []provider.ErrorClass{
		provider.ClassMediaExpired, provider.ClassMediaExpired,
	}}
	rehoster := &fakeRehoster{url: "https://fresh.example/img", ok: true}
	r := testRunner(store, sender, &fakeTurbo{cfg: turboCfg(10, 1)}, rehoster)

	require.NoError(t, r.Run(context.Background(), testCampaign()))

	assert.Equal(t, 1, rehoster.calls, "rehost happens exactly once per row")
	assert.Equal(t, 2, sender.calls, "no third attempt")
	require.Equal(t, 1, store.countByStatus(models.ContactFailed))
	assert.Equal(t, string(provider.ClassPolicyRejected), store.row("row-0").errMsg)
}

func TestRunnerCancelMidFlight(t *testing.T) {
	phones := make([]string, 10)
	for i := range phones {
		phones[i] = fmt.Sprintf("+55119876543%02d", i)
	}
	store := newFakeStore(StatusSending, phones...)
	store.cancelAfterBatches = 2

	sender := &fakeSender{}
	r := testRunner(store, sender, &fakeTurbo{cfg: turboCfg(2, 2)}, &fakeRehoster{})

	require.NoError(t, r.Run(context.Background(), testCampaign()))

	// Two batches of two went out; the cancel was observed at the next
	// batch boundary and nothing further was claimed.
	assert.Equal(t, 4, store.countByStatus(models.ContactSent))
	assert.Equal(t, 6, store.countByStatus(models.ContactPending),
		"unclaimed rows are left for the cancel path to mark skipped")
	assert.Empty(t, store.finalized)
}

func TestRunnerPermanentFailure(t *testing.T) {
	store := newFakeStore(StatusSending, "+5511987654321", "+5511987654322")
	sender := &fakeSender{script: []provider.ErrorClass{provider.ClassPermanent}}
	r := testRunner(store, sender, &fakeTurbo{cfg: turboCfg(10, 1)}, &fakeRehoster{})

	require.NoError(t, r.Run(context.Background(), testCampaign()))

	assert.Equal(t, 1, store.countByStatus(models.ContactFailed))
	assert.Equal(t, 1, store.countByStatus(models.ContactSent))
	assert.Equal(t, StatusCompleted, store.finalized, "mixed outcomes still complete")
}
