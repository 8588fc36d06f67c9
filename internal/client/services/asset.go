package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/goldtrack/internal/client/api"
	"github.com/dmitrijs2005/goldtrack/internal/client/models"
	"github.com/dmitrijs2005/goldtrack/internal/client/session"
	"github.com/dmitrijs2005/goldtrack/internal/logging"
)

// DefaultHistoryDays is the price-history lookback used when the caller
// does not specify one.
const DefaultHistoryDays = 30

// Snapshot is the repository's current view of remote state: the last
// fetch results and nothing more. AssetsLoaded distinguishes "no assets"
// (explicit empty state) from "not fetched yet".
type Snapshot struct {
	Assets       []models.Asset
	AssetsLoaded bool
	Dashboard    *models.DashboardSummary
}

// AssetService is the client-side asset repository. It fetches the asset
// list and the server-computed dashboard summary, executes add/remove
// mutations, and re-synchronizes both panels after every mutation so they
// are never knowingly stale relative to each other by more than one round
// trip.
//
// The two panel fetches are independent, unordered network calls: each one
// updates its own snapshot section as it resolves. A monotonic sequence
// number per panel discards responses that were superseded by a newer
// request, and Close abandons whatever is still in flight at logout.
type AssetService struct {
	client  api.Client
	session *session.Store
	log     logging.Logger

	lifetime context.Context
	cancel   context.CancelFunc

	mu           sync.Mutex
	assets       []models.Asset
	assetsLoaded bool
	dashboard    *models.DashboardSummary
	listApplied  int64
	dashApplied  int64

	listSeq atomic.Int64
	dashSeq atomic.Int64
}

func NewAssetService(client api.Client, sess *session.Store, log logging.Logger) *AssetService {
	ctx, cancel := context.WithCancel(context.Background())
	return &AssetService{
		client:   client,
		session:  sess,
		log:      log,
		lifetime: ctx,
		cancel:   cancel,
	}
}

// Close ends the repository's lifetime: in-flight requests issued through
// it are cancelled and late responses are no longer applied.
func (s *AssetService) Close() {
	s.cancel()
}

// reqCtx ties a request to both the caller's context and the repository
// lifetime.
func (s *AssetService) reqCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.lifetime, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// Snapshot returns a copy of the current panel state.
func (s *AssetService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Assets:       append([]models.Asset(nil), s.assets...),
		AssetsLoaded: s.assetsLoaded,
		Dashboard:    s.dashboard,
	}
}

// RefreshAssets fetches the asset list. A response older than the newest
// issued list request is discarded instead of applied.
func (s *AssetService) RefreshAssets(ctx context.Context) error {
	seq := s.listSeq.Add(1)
	ctx, cancel := s.reqCtx(ctx)
	defer cancel()

	assets, err := s.client.ListAssets(ctx, s.session.Token())
	if err != nil {
		return s.fail(ctx, "list assets", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.listSeq.Load() || seq <= s.listApplied || s.lifetime.Err() != nil {
		s.log.Debug(ctx, "discarding superseded asset list response", "seq", seq)
		return nil
	}
	s.listApplied = seq
	s.assets = assets
	s.assetsLoaded = true
	return nil
}

// RefreshDashboard fetches the aggregate summary, with the same
// supersession rule as RefreshAssets.
func (s *AssetService) RefreshDashboard(ctx context.Context) error {
	seq := s.dashSeq.Add(1)
	ctx, cancel := s.reqCtx(ctx)
	defer cancel()

	d, err := s.client.GetDashboard(ctx, s.session.Token())
	if err != nil {
		return s.fail(ctx, "dashboard", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.dashSeq.Load() || seq <= s.dashApplied || s.lifetime.Err() != nil {
		s.log.Debug(ctx, "discarding superseded dashboard response", "seq", seq)
		return nil
	}
	s.dashApplied = seq
	s.dashboard = d
	return nil
}

// Refresh runs both panel fetches concurrently. Either may resolve first;
// each applies to its own section independently. Errors are joined.
func (s *AssetService) Refresh(ctx context.Context) error {
	var wg sync.WaitGroup
	var listErr, dashErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		listErr = s.RefreshAssets(ctx)
	}()
	go func() {
		defer wg.Done()
		dashErr = s.RefreshDashboard(ctx)
	}()
	wg.Wait()

	return errors.Join(listErr, dashErr)
}

// Add records a new holding and re-fetches both panels. The returned text
// is the server's confirmation message for the toast. On failure the
// caller keeps its form values and shows the error text.
func (s *AssetService) Add(ctx context.Context, in models.AddAssetInput) (string, error) {
	msg, err := s.client.AddAsset(ctx, s.session.Token(), in)
	if err != nil {
		return "", s.fail(ctx, "add asset", err)
	}
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "re-sync after add failed", "error", err)
	}
	return msg, nil
}

// Remove deletes a holding by id. The caller is responsible for the
// confirmation step; by the time Remove runs, the action is final.
//
// Both panels are re-fetched regardless of the server's verdict, so the
// view converges on whatever the backend now holds. Non-401 failures are
// returned for display rather than swallowed.
func (s *AssetService) Remove(ctx context.Context, id int64) error {
	err := s.client.RemoveAsset(ctx, s.session.Token(), id)
	if errors.Is(err, api.ErrUnauthorized) {
		return s.fail(ctx, "remove asset", err)
	}

	if rerr := s.Refresh(ctx); rerr != nil {
		s.log.Warn(ctx, "re-sync after remove failed", "error", rerr)
	}
	if err != nil {
		return fmt.Errorf("remove asset: %w", err)
	}
	return nil
}

// PriceHistory fetches the read-only price series. Unauthenticated, so a
// 401 cannot occur; errors propagate and the view degrades to "no data".
func (s *AssetService) PriceHistory(ctx context.Context, days int) ([]models.PriceHistoryEntry, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}
	ctx, cancel := s.reqCtx(ctx)
	defer cancel()

	entries, err := s.client.PriceHistory(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("price history: %w", err)
	}
	return entries, nil
}

// fail maps an operation failure. A 401 is the one automatic
// session-termination path: the persisted token is cleared, the session
// subscription signals the host, and processing of the response stops.
func (s *AssetService) fail(ctx context.Context, op string, err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		s.log.Info(ctx, "session rejected by backend, logging out", "op", op)
		s.session.Clear(ctx)
		return api.ErrUnauthorized
	}
	return fmt.Errorf("%s: %w", op, err)
}
