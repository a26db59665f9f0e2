package stats

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"buildboard/internal/models"
)

// Defaults applied when a request omits the window parameter.
const (
	DefaultJobStatsLimit     = 30
	DefaultDistributionLimit = 50
	DefaultTrendLimit        = 20
	DefaultTimeSeriesDays    = 7

	timeSeriesFetchLimit = 100
	perJobHistoryLimit   = 10
	fanOutConcurrency    = 8
)

// BuildSource is the slice of the upstream client the statistics service
// reads from.
type BuildSource interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	BuildHistory(ctx context.Context, name string, limit int) ([]models.BuildDetails, error)
	LastBuild(ctx context.Context, name string) (*models.BuildInfo, error)
}

// Service fetches build data and reduces it with the pure engine
// functions. It holds no state between requests.
type Service struct {
	source BuildSource
	lg     *zap.SugaredLogger
}

func NewService(source BuildSource, lg *zap.SugaredLogger) *Service {
	return &Service{source: source, lg: lg}
}

// JobStatistics summarizes up to limit recent builds of one job.
func (s *Service) JobStatistics(ctx context.Context, name string, limit int) (models.BuildStatistics, error) {
	if limit <= 0 {
		limit = DefaultJobStatsLimit
	}
	builds, err := s.source.BuildHistory(ctx, name, limit)
	if err != nil {
		return models.BuildStatistics{}, err
	}
	return Summarize(builds), nil
}

// AllJobsStatistics fans out one bounded-concurrency history fetch per
// job. A failing job contributes a zero-valued entry instead of
// aborting the whole response; output order follows the job list.
func (s *Service) AllJobsStatistics(ctx context.Context) ([]models.JobStatistics, error) {
	jobs, err := s.source.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.JobStatistics, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutConcurrency)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			result[i] = models.JobStatistics{JobName: job.Name}
			builds, err := s.source.BuildHistory(gctx, job.Name, perJobHistoryLimit)
			if err != nil {
				s.lg.Warnw("job statistics unavailable", "job", job.Name, "error", err)
				return nil
			}
			summary := Summarize(builds)
			result[i].TotalBuilds = summary.TotalBuilds
			result[i].SuccessRate = summary.SuccessRate
			result[i].AverageDuration = summary.AverageDuration
			if len(builds) > 0 {
				result[i].LastBuildTime = builds[0].Timestamp
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// TimeSeries buckets recent builds of a job into day buckets.
func (s *Service) TimeSeries(ctx context.Context, name string, days int) ([]models.TimeSeriesPoint, error) {
	if days <= 0 {
		days = DefaultTimeSeriesDays
	}
	builds, err := s.source.BuildHistory(ctx, name, timeSeriesFetchLimit)
	if err != nil {
		return nil, err
	}
	return BucketByDay(builds, days, time.Now()), nil
}

// StatusDistribution histograms the results of up to limit builds.
func (s *Service) StatusDistribution(ctx context.Context, name string, limit int) ([]models.StatusDistributionEntry, error) {
	if limit <= 0 {
		limit = DefaultDistributionLimit
	}
	builds, err := s.source.BuildHistory(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	return StatusHistogram(builds), nil
}

// DurationTrend returns the duration curve of up to limit builds.
func (s *Service) DurationTrend(ctx context.Context, name string, limit int) ([]models.DurationTrendPoint, error) {
	if limit <= 0 {
		limit = DefaultTrendLimit
	}
	builds, err := s.source.BuildHistory(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	return DurationTrend(builds, limit), nil
}

// Dashboard computes the shallow fleet overview. Last builds are fetched
// concurrently; a job whose last build cannot be read simply counts as
// having none.
func (s *Service) Dashboard(ctx context.Context) (models.DashboardOverview, error) {
	jobs, err := s.source.ListJobs(ctx)
	if err != nil {
		return models.DashboardOverview{}, err
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutConcurrency)
	for i := range jobs {
		i := i
		g.Go(func() error {
			last, err := s.source.LastBuild(gctx, jobs[i].Name)
			if err != nil {
				s.lg.Warnw("last build unavailable", "job", jobs[i].Name, "error", err)
				jobs[i].LastBuild = nil
				return nil
			}
			jobs[i].LastBuild = last
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.DashboardOverview{}, err
	}
	return DashboardOverview(jobs), nil
}
