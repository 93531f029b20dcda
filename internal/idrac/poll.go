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
	"time"
)

// Job and power transitions take tens of seconds to minutes; a fixed
// interval with no backoff keeps the polling behavior predictable.
var pollInterval = 5 * time.Second

// waitUntil polls until the condition reports done, the timeout elapses, or
// ctx is canceled. The first poll happens immediately. A timeout <= 0 means
// polling is unbounded; callers must then ensure liveness through ctx or an
// outer deadline. When waiting for the next poll would overrun the
// deadline, the wait fails right away instead of sleeping past it.
func (c *Client) waitUntil(ctx context.Context, timeout time.Duration, poll func(context.Context) (bool, error)) error {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	for {
		done, err := poll(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		if !deadline.IsZero() && time.Now().Add(pollInterval).After(deadline) {
			return fmt.Errorf("%w within %s", ErrTimeout, timeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// WaitForJobState polls the job identified by id (bare id or full path)
// until its classified state equals want.
func (c *Client) WaitForJobState(ctx context.Context, id string, want JobState, timeout time.Duration) error {
	jobPath := ResolveJobPath(id)

	return c.waitUntil(ctx, timeout, func(ctx context.Context) (bool, error) {
		job, err := c.Get(ctx, jobPath)
		if err != nil {
			return false, err
		}
		return StateOfJob(job) == want, nil
	})
}

// WaitForPowerState polls the system resource until its PowerState field
// equals want. Power states are open-ended controller text, so comparison
// is plain string equality.
func (c *Client) WaitForPowerState(ctx context.Context, want string, timeout time.Duration) error {
	return c.waitUntil(ctx, timeout, func(ctx context.Context) (bool, error) {
		system, err := c.GetSystem(ctx)
		if err != nil {
			return false, err
		}
		return system.StringValue("PowerState") == want, nil
	})
}
