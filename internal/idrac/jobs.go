/*
Copyright (c) 2024 Dell Inc., or its subsidiaries. All Rights Reserved.

Licensed under the Mozilla Public License Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://mozilla.org/MPL/2.0/


Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package idrac

import (
	"context"
	"fmt"
	"strings"
)

// JobState is the client-side classification of a controller job. The
// controller only reports free-text status messages; StateOfJob maps them
// onto this closed set.
type JobState int

const (
	JobStateUnknown JobState = iota
	JobStateScheduled
	JobStateRunning
	JobStateFinished
	JobStateFailed
)

func (s JobState) String() string {
	switch s {
	case JobStateScheduled:
		return "scheduled"
	case JobStateRunning:
		return "running"
	case JobStateFinished:
		return "finished"
	case JobStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ParseJobState maps a state name onto a JobState. Unrecognized names are a
// caller error, unlike unrecognized job messages.
func ParseJobState(name string) (JobState, error) {
	switch strings.ToLower(name) {
	case "unknown":
		return JobStateUnknown, nil
	case "scheduled":
		return JobStateScheduled, nil
	case "running":
		return JobStateRunning, nil
	case "finished":
		return JobStateFinished, nil
	case "failed":
		return JobStateFailed, nil
	default:
		return JobStateUnknown, fmt.Errorf("%w: unrecognized job state %q", ErrInvalidArgument, name)
	}
}

// Fixed status vocabulary the iDRAC uses for non-failure states. Failure
// messages are free text and matched by substring instead.
const (
	msgJobScheduled = "Task successfully scheduled."
	msgJobRunning   = "Job in progress."
	msgJobFinished  = "Job completed successfully."
)

// StateOfJob classifies a job by its Message field. The failed check runs
// first because failure messages do not follow the fixed vocabulary of the
// other states. The mapping is total: any unrecognized message yields
// JobStateUnknown, never an error.
func StateOfJob(job Resource) JobState {
	msg := job.StringValue("Message")

	switch {
	case strings.Contains(strings.ToLower(msg), "failed"):
		return JobStateFailed
	case msg == msgJobScheduled:
		return JobStateScheduled
	case msg == msgJobRunning:
		return JobStateRunning
	case msg == msgJobFinished:
		return JobStateFinished
	default:
		return JobStateUnknown
	}
}

// ResolveJobPath turns a job identifier into a fetchable path. An already
// absolute path is returned unchanged, so resolution is idempotent; a bare
// id such as JID_123456789012 is joined under the jobs collection.
func ResolveJobPath(id string) string {
	if strings.HasPrefix(id, "/") {
		return id
	}
	return JobsPath + "/" + id
}

// GetJob fetches a job by bare id or full path. Jobs change over time, so
// the fetch is always fresh.
func (c *Client) GetJob(ctx context.Context, id string) (Resource, error) {
	return c.Get(ctx, ResolveJobPath(id))
}

// ListJobs returns references to all jobs known to the controller.
func (c *Client) ListJobs(ctx context.Context) ([]Member, error) {
	container, err := c.GetCached(ctx, JobsPath)
	if err != nil {
		return nil, err
	}
	return memberRefs(container), nil
}

// ListJobDetails fetches the current representation of every job.
func (c *Client) ListJobDetails(ctx context.Context) ([]Resource, error) {
	members, err := c.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	jobs := make([]Resource, 0, len(members))
	for _, member := range members {
		job, err := c.Get(ctx, member.Path)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
