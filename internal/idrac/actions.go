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
)

// InvokeAction executes a named action on the resource at path. Parameters
// are validated against the allowed values the controller advertises under
// the action descriptor's <name>@Redfish.AllowableValues companion fields
// before any request is issued, so operator mistakes fail fast and without
// network I/O. Action metadata is considered stable for the session and is
// resolved through the cache.
func (c *Client) InvokeAction(ctx context.Context, path, action string, params map[string]any) (Resource, error) {
	obj, err := c.GetCached(ctx, path)
	if err != nil {
		return nil, err
	}

	actions, _ := obj["Actions"].(map[string]any)
	descriptor, ok := actions[action].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: resource %s does not advertise %q", ErrActionNotFound, path, action)
	}

	for name, value := range params {
		allowed, ok := descriptor[name+"@Redfish.AllowableValues"].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: action %q takes no parameter %q", ErrUnknownParameter, action, name)
		}
		if !contains(allowed, value) {
			return nil, fmt.Errorf("%w: %v is not an allowed value for %s.%s",
				ErrInvalidParameterValue, value, action, name)
		}
	}

	target, _ := descriptor["target"].(string)
	if target == "" {
		return nil, fmt.Errorf("%w: action %q on %s has no target", ErrActionNotFound, action, path)
	}

	return c.Post(ctx, target, params)
}

func contains(allowed []any, value any) bool {
	for _, entry := range allowed {
		if entry == value {
			return true
		}
	}
	return false
}
