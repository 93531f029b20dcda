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
	"errors"
	"time"
)

// GetSystem fetches the computer system singleton, always fresh.
func (c *Client) GetSystem(ctx context.Context) (Resource, error) {
	return c.Get(ctx, SystemPath)
}

// GetManager fetches the iDRAC manager singleton, always fresh.
func (c *Client) GetManager(ctx context.Context) (Resource, error) {
	return c.Get(ctx, ManagerPath)
}

// ResetSystem invokes the computer system reset action, which controls the
// host power state. The reset type is validated against the values the
// controller currently advertises.
func (c *Client) ResetSystem(ctx context.Context, resetType string) (Resource, error) {
	return c.InvokeAction(ctx, SystemPath, "#ComputerSystem.Reset", map[string]any{
		"ResetType": resetType,
	})
}

// ResetManager gracefully restarts the iDRAC itself. The host keeps running
// while the controller reboots.
func (c *Client) ResetManager(ctx context.Context) (Resource, error) {
	return c.InvokeAction(ctx, ManagerPath, "#Manager.Reset", map[string]any{
		"ResetType": "GracefulRestart",
	})
}

// PowerCycleSystem shuts the host down and powers it back on.
//
// A graceful shutdown is tried first to avoid data loss on the host. If the
// host does not reach Off within timeout, the shutdown escalates to a
// forced power cut with a second full timeout window of its own; automation
// must make progress even when the host OS is unresponsive. A host that is
// already off is powered on directly. Waits that still time out after the
// escalation, and the power-on wait, fail the whole operation with
// ErrTimeout, leaving the host in whatever state it reached.
func (c *Client) PowerCycleSystem(ctx context.Context, timeout time.Duration) error {
	system, err := c.GetSystem(ctx)
	if err != nil {
		return err
	}

	if system.StringValue("PowerState") == "On" {
		if _, err := c.ResetSystem(ctx, "GracefulShutdown"); err != nil {
			return err
		}

		err := c.WaitForPowerState(ctx, "Off", timeout)
		if errors.Is(err, ErrTimeout) {
			if _, err := c.ResetSystem(ctx, "ForceOff"); err != nil {
				return err
			}
			if err := c.WaitForPowerState(ctx, "Off", timeout); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	if _, err := c.ResetSystem(ctx, "On"); err != nil {
		return err
	}

	return c.WaitForPowerState(ctx, "On", timeout)
}
