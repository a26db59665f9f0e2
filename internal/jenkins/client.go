package jenkins

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/bndr/gojenkins"
	"go.uber.org/zap"

	"buildboard/internal/models"
)

// OpError wraps a failed upstream call with the operation that issued it.
// Calls are never retried; the first failure surfaces to the gateway.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string { return fmt.Sprintf("jenkins %s: %v", e.Op, e.Err) }
func (e *OpError) Unwrap() error { return e.Err }

func opErr(op string, err error) error { return &OpError{Op: op, Err: err} }

// Client wraps the Jenkins REST API behind typed operations. It is safe
// for concurrent use; the underlying connection is established lazily on
// the first call.
type Client struct {
	url      string
	username string
	token    string
	lg       *zap.SugaredLogger

	mu    sync.Mutex
	api   *gojenkins.Jenkins
	ready bool
}

func NewClient(url, username, token string, timeout time.Duration, lg *zap.SugaredLogger) *Client {
	c := &Client{url: url, username: username, token: token, lg: lg}
	httpClient := &http.Client{Timeout: timeout}
	c.api = gojenkins.CreateJenkins(httpClient, url, username, token)
	return c
}

func (c *Client) connect(ctx context.Context) (*gojenkins.Jenkins, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return c.api, nil
	}
	if _, err := c.api.Init(ctx); err != nil {
		return nil, fmt.Errorf("connect to jenkins: %w", err)
	}
	c.ready = true
	return c.api, nil
}

// ListJobs returns every job on the server. Folder containers are
// skipped. Last-build references carry number and URL only; callers that
// need result or duration fetch the build itself.
func (c *Client) ListJobs(ctx context.Context) ([]models.Job, error) {
	api, err := c.connect(ctx)
	if err != nil {
		return nil, opErr("list-jobs", err)
	}
	jobs, err := api.GetAllJobs(ctx)
	if err != nil {
		return nil, opErr("list-jobs", err)
	}
	result := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.Raw.Class == "com.cloudbees.hudson.plugins.folder.Folder" {
			continue
		}
		result = append(result, jobFromAPI(job))
	}
	c.lg.Debugw("fetched jobs", "count", len(result))
	return result, nil
}

// GetJob fetches one job by name.
func (c *Client) GetJob(ctx context.Context, name string) (models.Job, error) {
	api, err := c.connect(ctx)
	if err != nil {
		return models.Job{}, opErr("get-job", err)
	}
	job, err := api.GetJob(ctx, name)
	if err != nil {
		return models.Job{}, opErr("get-job", fmt.Errorf("job %q: %w", name, err))
	}
	return jobFromAPI(job), nil
}

// GetBuild fetches one build of a job.
func (c *Client) GetBuild(ctx context.Context, name string, number int64) (models.BuildDetails, error) {
	api, err := c.connect(ctx)
	if err != nil {
		return models.BuildDetails{}, opErr("get-build", err)
	}
	job, err := api.GetJob(ctx, name)
	if err != nil {
		return models.BuildDetails{}, opErr("get-build", fmt.Errorf("job %q: %w", name, err))
	}
	build, err := job.GetBuild(ctx, number)
	if err != nil {
		return models.BuildDetails{}, opErr("get-build", fmt.Errorf("%s#%d: %w", name, number, err))
	}
	return buildFromAPI(build), nil
}

// BuildHistory returns up to limit builds of a job, most recent first.
func (c *Client) BuildHistory(ctx context.Context, name string, limit int) ([]models.BuildDetails, error) {
	api, err := c.connect(ctx)
	if err != nil {
		return nil, opErr("build-history", err)
	}
	job, err := api.GetJob(ctx, name)
	if err != nil {
		return nil, opErr("build-history", fmt.Errorf("job %q: %w", name, err))
	}
	ids, err := job.GetAllBuildIds(ctx)
	if err != nil {
		return nil, opErr("build-history", fmt.Errorf("job %q build ids: %w", name, err))
	}
	if limit <= 0 || limit > len(ids) {
		limit = len(ids)
	}
	result := make([]models.BuildDetails, 0, limit)
	for _, id := range ids[:limit] {
		build, err := job.GetBuild(ctx, id.Number)
		if err != nil {
			c.lg.Warnw("skipping unreadable build", "job", name, "build", id.Number, "error", err)
			continue
		}
		result = append(result, buildFromAPI(build))
	}
	return result, nil
}

// LastBuild fetches the most recent build of a job, or nil when the job
// has never built.
func (c *Client) LastBuild(ctx context.Context, name string) (*models.BuildInfo, error) {
	api, err := c.connect(ctx)
	if err != nil {
		return nil, opErr("last-build", err)
	}
	job, err := api.GetJob(ctx, name)
	if err != nil {
		return nil, opErr("last-build", fmt.Errorf("job %q: %w", name, err))
	}
	if job.Raw.LastBuild.Number == 0 {
		return nil, nil
	}
	build, err := job.GetLastBuild(ctx)
	if err != nil {
		return nil, opErr("last-build", fmt.Errorf("%s: %w", name, err))
	}
	info := buildFromAPI(build).BuildInfo
	return &info, nil
}

// BuildLog returns the raw console text of a build.
func (c *Client) BuildLog(ctx context.Context, name string, number int64) (string, error) {
	api, err := c.connect(ctx)
	if err != nil {
		return "", opErr("get-build-log", err)
	}
	job, err := api.GetJob(ctx, name)
	if err != nil {
		return "", opErr("get-build-log", fmt.Errorf("job %q: %w", name, err))
	}
	build, err := job.GetBuild(ctx, number)
	if err != nil {
		return "", opErr("get-build-log", fmt.Errorf("%s#%d: %w", name, number, err))
	}
	return build.GetConsoleOutput(ctx), nil
}

// TriggerBuild queues a build, with or without parameters, and returns
// the queue item id.
func (c *Client) TriggerBuild(ctx context.Context, name string, params map[string]string) (int64, error) {
	api, err := c.connect(ctx)
	if err != nil {
		return 0, opErr("trigger-build", err)
	}
	job, err := api.GetJob(ctx, name)
	if err != nil {
		return 0, opErr("trigger-build", fmt.Errorf("job %q: %w", name, err))
	}
	queueID, err := job.InvokeSimple(ctx, params)
	if err != nil {
		return 0, opErr("trigger-build", fmt.Errorf("%s: %w", name, err))
	}
	c.lg.Infow("build triggered", "job", name, "queue", queueID)
	return queueID, nil
}

// StopBuild aborts a running build.
func (c *Client) StopBuild(ctx context.Context, name string, number int64) error {
	api, err := c.connect(ctx)
	if err != nil {
		return opErr("stop-build", err)
	}
	job, err := api.GetJob(ctx, name)
	if err != nil {
		return opErr("stop-build", fmt.Errorf("job %q: %w", name, err))
	}
	build, err := job.GetBuild(ctx, number)
	if err != nil {
		return opErr("stop-build", fmt.Errorf("%s#%d: %w", name, number, err))
	}
	if _, err := build.Stop(ctx); err != nil {
		return opErr("stop-build", fmt.Errorf("%s#%d: %w", name, number, err))
	}
	return nil
}

// CreateJob submits a pipeline job definition. The config XML comes from
// the caller-supplied script or the default template.
func (c *Client) CreateJob(ctx context.Context, cfg models.JobConfig) error {
	api, err := c.connect(ctx)
	if err != nil {
		return opErr("create-job", err)
	}
	if _, err := api.CreateJob(ctx, configXML(cfg), cfg.Name); err != nil {
		return opErr("create-job", fmt.Errorf("job %q: %w", cfg.Name, err))
	}
	c.lg.Infow("job created", "job", cfg.Name)
	return nil
}

// DeleteJob removes a job from the server.
func (c *Client) DeleteJob(ctx context.Context, name string) error {
	api, err := c.connect(ctx)
	if err != nil {
		return opErr("delete-job", err)
	}
	if _, err := api.DeleteJob(ctx, name); err != nil {
		return opErr("delete-job", fmt.Errorf("job %q: %w", name, err))
	}
	c.lg.Infow("job deleted", "job", name)
	return nil
}

// Health probes the server root endpoint.
func (c *Client) Health(ctx context.Context) error {
	api, err := c.connect(ctx)
	if err != nil {
		return opErr("health", err)
	}
	if _, err := api.Poll(ctx); err != nil {
		return opErr("health", err)
	}
	return nil
}
