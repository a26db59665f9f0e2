package models

// Roles assigned to dashboard accounts. A user's role is fixed at creation.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a dashboard account. The password hash never leaves the
// credential store, so it is not part of this type.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Job mirrors a Jenkins job as reported by its REST API. It is fetched
// fresh on every request and never stored locally.
type Job struct {
	Name                string     `json:"name"`
	URL                 string     `json:"url"`
	Color               string     `json:"color"`
	DisplayName         string     `json:"displayName,omitempty"`
	Description         string     `json:"description,omitempty"`
	Buildable           bool       `json:"buildable"`
	LastBuild           *BuildInfo `json:"lastBuild,omitempty"`
	LastSuccessfulBuild *BuildInfo `json:"lastSuccessfulBuild,omitempty"`
	LastFailedBuild     *BuildInfo `json:"lastFailedBuild,omitempty"`
}

// Build results reported by Jenkins. A running build has an empty result.
const (
	ResultSuccess  = "SUCCESS"
	ResultFailure  = "FAILURE"
	ResultUnstable = "UNSTABLE"
	ResultAborted  = "ABORTED"
)

// BuildInfo is the summary form of a single build execution.
// Timestamp and Duration are in milliseconds.
type BuildInfo struct {
	Number    int64  `json:"number"`
	URL       string `json:"url"`
	Result    string `json:"result"`
	Timestamp int64  `json:"timestamp"`
	Duration  int64  `json:"duration"`
	Building  bool   `json:"building"`
}

// BuildDetails extends BuildInfo with display metadata and the change set.
type BuildDetails struct {
	BuildInfo
	FullDisplayName string       `json:"fullDisplayName"`
	Description     string       `json:"description,omitempty"`
	ChangeSet       []ChangeItem `json:"changeSet,omitempty"`
}

// ChangeItem is one SCM change included in a build.
type ChangeItem struct {
	Author    string `json:"author"`
	Msg       string `json:"msg"`
	Timestamp int64  `json:"timestamp"`
	CommitID  string `json:"commitId"`
}

// JobConfig describes a job to create. When Script is empty a default
// declarative pipeline is generated from GitURL and Branch.
type JobConfig struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	GitURL      string `json:"gitUrl,omitempty"`
	Branch      string `json:"branch,omitempty"`
	Script      string `json:"script,omitempty"`
}
