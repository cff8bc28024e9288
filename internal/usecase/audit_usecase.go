package usecase

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/digitalnycagency/seo-audit-api/internal/entity"
	"github.com/digitalnycagency/seo-audit-api/internal/repository"
	"github.com/digitalnycagency/seo-audit-api/pkg/metrics"
	"github.com/digitalnycagency/seo-audit-api/pkg/utils"
	"go.uber.org/zap"
)

var (
	ErrURLRequired = errors.New("no URL provided")
)

// Auditor defines the interface for auditing a single page.
type Auditor interface {
	// Audit fetches url and builds its report. A page that cannot be fetched
	// yields a *entity.FetchError and no report.
	Audit(ctx context.Context, url string) (*entity.AuditReport, error)
}

type auditUseCase struct {
	fetcher     repository.PageFetcher
	linkChecker repository.LinkChecker
	history     []repository.AuditHistoryRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewAuditor creates a new Auditor. History repositories are optional.
func NewAuditor(
	fetcher repository.PageFetcher,
	linkChecker repository.LinkChecker,
	m *metrics.Metrics,
	logger *zap.Logger,
	history ...repository.AuditHistoryRepository,
) Auditor {
	return &auditUseCase{
		fetcher:     fetcher,
		linkChecker: linkChecker,
		history:     history,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *auditUseCase) Audit(ctx context.Context, rawURL string) (*entity.AuditReport, error) {
	if rawURL == "" {
		return nil, ErrURLRequired
	}

	start := time.Now()
	defer func() {
		uc.metrics.AuditDuration.Observe(time.Since(start).Seconds())
	}()

	page, err := uc.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, uc.handleFetchFailure(ctx, rawURL, err)
	}

	if page.Truncated {
		uc.logger.Warn("page body truncated", zap.String("url", rawURL), zap.Int("bytes", len(page.Body)))
	}

	data, err := extractPageMetadata(page.Body)
	if err != nil {
		return nil, uc.handleFetchFailure(ctx, rawURL, &entity.FetchError{URL: rawURL, Err: err})
	}

	// Links resolve against the requested URL, not the post-redirect one.
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, uc.handleFetchFailure(ctx, rawURL, &entity.FetchError{URL: rawURL, Err: err})
	}

	report := &entity.AuditReport{
		Title:           data.Title,
		MetaDescription: data.MetaDescription,
		H1Tags:          data.H1Tags,
		BrokenLinks:     uc.findBrokenLinks(ctx, base, data.Hrefs),
		LoadTime:        page.Elapsed.Seconds(),
		MobileFriendly:  data.MobileFriendly,
		CoreWebVitals:   entity.PlaceholderVitals(),
	}

	uc.metrics.IncAudit("ok")
	uc.logger.Info("audit completed",
		zap.String("url", rawURL),
		zap.Int("links", len(data.Hrefs)),
		zap.Int("broken_links", len(report.BrokenLinks)),
		zap.Float64("load_time", report.LoadTime),
		zap.Duration("duration", time.Since(start)),
	)
	uc.record(ctx, &entity.AuditRecord{URL: rawURL, Report: report, AuditedAt: uc.now()})

	return report, nil
}

// findBrokenLinks checks every http(s) link one after another, in document
// order. Duplicates are checked and reported each time they appear.
func (uc *auditUseCase) findBrokenLinks(ctx context.Context, base *url.URL, hrefs []string) []string {
	broken := []string{}
	for _, href := range hrefs {
		link, ok := utils.ResolveLink(base, href)
		if !ok {
			uc.metrics.LinksSkippedTotal.Inc()
			continue
		}

		res := uc.linkChecker.Check(ctx, link)
		uc.metrics.IncLinkCheck(res.Broken)
		if res.Broken {
			uc.logger.Debug("broken link", zap.String("link", link), zap.Int("status", res.StatusCode), zap.Error(res.Err))
			broken = append(broken, link)
		}
	}
	return broken
}

func (uc *auditUseCase) handleFetchFailure(ctx context.Context, rawURL string, err error) error {
	uc.logger.Warn("failed to fetch page", zap.String("url", rawURL), zap.Error(err))
	uc.metrics.IncAudit("fetch_error")
	uc.record(ctx, &entity.AuditRecord{URL: rawURL, FetchError: err.Error(), AuditedAt: uc.now()})
	return err
}

// record hands the audit to every history store. Store failures are logged
// and never reach the caller.
func (uc *auditUseCase) record(ctx context.Context, rec *entity.AuditRecord) {
	for _, h := range uc.history {
		if err := h.Save(ctx, rec); err != nil {
			uc.logger.Warn("failed to record audit history", zap.String("store", h.Name()), zap.String("url", rec.URL), zap.Error(err))
			uc.metrics.IncHistoryError(h.Name())
		}
	}
}
