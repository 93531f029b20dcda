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
	"path"
	"strings"
)

// ListStorageControllers returns references to the system's storage
// controllers. Storage topology does not change mid-session, so the
// collection is resolved through the cache.
func (c *Client) ListStorageControllers(ctx context.Context) ([]Member, error) {
	container, err := c.GetCached(ctx, StoragePath)
	if err != nil {
		return nil, err
	}
	return memberRefs(container), nil
}

// ListVolumes returns references to the volumes of one storage controller.
func (c *Client) ListVolumes(ctx context.Context, controllerPath string) ([]Member, error) {
	container, err := c.GetCached(ctx, controllerPath+"/Volumes")
	if err != nil {
		return nil, err
	}
	return memberRefs(container), nil
}

// ListAllVolumes flattens the per-controller volume lists in controller
// order. Each volume belongs to exactly one controller, so no deduplication
// is needed.
func (c *Client) ListAllVolumes(ctx context.Context) ([]Member, error) {
	controllers, err := c.ListStorageControllers(ctx)
	if err != nil {
		return nil, err
	}

	var volumes []Member
	for _, controller := range controllers {
		members, err := c.ListVolumes(ctx, controller.Path)
		if err != nil {
			return nil, err
		}
		volumes = append(volumes, members...)
	}

	return volumes, nil
}

// GetVolumeByName returns the first volume whose Name field matches
// exactly, or nil when no volume matches. Candidates are fetched fresh,
// since this is a point-in-time query.
func (c *Client) GetVolumeByName(ctx context.Context, name string) (Resource, error) {
	return c.findVolume(ctx, "Name", name)
}

// GetVolumeByID returns the first volume whose Id field matches exactly, or
// nil when no volume matches.
func (c *Client) GetVolumeByID(ctx context.Context, id string) (Resource, error) {
	return c.findVolume(ctx, "Id", id)
}

func (c *Client) findVolume(ctx context.Context, field, want string) (Resource, error) {
	volumes, err := c.ListAllVolumes(ctx)
	if err != nil {
		return nil, err
	}

	for _, volume := range volumes {
		detail, err := c.Get(ctx, volume.Path)
		if err != nil {
			return nil, err
		}
		if detail.StringValue(field) == want {
			return detail, nil
		}
	}

	return nil, nil
}

// InitializeVolume schedules an initialization job for the volume at
// volumePath and returns the job id. The volume must not already report a
// pending operation. The job id is delivered through the Location header of
// the action response.
func (c *Client) InitializeVolume(ctx context.Context, volumePath string, fast bool) (string, error) {
	volume, err := c.Get(ctx, volumePath)
	if err != nil {
		return "", err
	}

	if ops, _ := volume["Operations"].([]any); len(ops) > 0 {
		return "", fmt.Errorf("%w: volume %s", ErrOperationInProgress, volumePath)
	}

	initType := "Fast"
	if !fast {
		initType = "Slow"
	}

	res, err := c.InvokeAction(ctx, volumePath, "#Volume.Initialize", map[string]any{
		"InitializeType": initType,
	})
	if err != nil {
		return "", err
	}

	location := res.Location()
	if !strings.Contains(location, "JID") {
		return "", fmt.Errorf("%w: no job id for initialization of %s", ErrJobSchedulingFailed, volumePath)
	}

	return path.Base(location), nil
}
