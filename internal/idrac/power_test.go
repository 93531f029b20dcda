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
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const systemResetTarget = SystemPath + "/Actions/ComputerSystem.Reset"

// powerSim is a fake host whose power state optionally follows the reset
// actions it receives.
type powerSim struct {
	state  string
	resets []string

	// follow makes the simulated host actually honor reset requests;
	// when false the host is unresponsive and never changes state.
	follow bool
}

func (p *powerSim) install(bmc *fakeBMC) {
	bmc.handle(http.MethodGet, SystemPath, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"Id":         "System.Embedded.1",
			"PowerState": p.state,
			"Actions": map[string]any{
				"#ComputerSystem.Reset": map[string]any{
					"target": systemResetTarget,
					"ResetType@Redfish.AllowableValues": []any{
						"On", "ForceOff", "ForceRestart", "GracefulShutdown",
						"GracefulRestart", "PushPowerButton", "Nmi", "PowerCycle",
					},
				},
			},
		})
	})
	bmc.handle(http.MethodPost, systemResetTarget, func(w http.ResponseWriter, r *http.Request) {
		var params map[string]any
		_ = json.NewDecoder(r.Body).Decode(&params)
		resetType, _ := params["ResetType"].(string)
		p.resets = append(p.resets, resetType)

		if p.follow {
			switch resetType {
			case "On":
				p.state = "On"
			case "ForceOff", "GracefulShutdown":
				p.state = "Off"
			}
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestPowerCycleGracefulPath(t *testing.T) {
	shortPollInterval(t)

	bmc := newFakeBMC()
	sim := &powerSim{state: "On", follow: true}
	sim.install(bmc)
	client := newTestClient(t, bmc)

	err := client.PowerCycleSystem(context.Background(), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []string{"GracefulShutdown", "On"}, sim.resets)
	assert.Equal(t, "On", sim.state)
}

func TestPowerCycleFromPoweredOff(t *testing.T) {
	shortPollInterval(t)

	bmc := newFakeBMC()
	sim := &powerSim{state: "Off", follow: true}
	sim.install(bmc)
	client := newTestClient(t, bmc)

	err := client.PowerCycleSystem(context.Background(), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []string{"On"}, sim.resets)
}

func TestPowerCycleEscalatesThenTimesOut(t *testing.T) {
	shortPollInterval(t)

	bmc := newFakeBMC()
	sim := &powerSim{state: "On", follow: false}
	sim.install(bmc)
	client := newTestClient(t, bmc)

	// The unresponsive host never reaches Off: the graceful wait times
	// out, the orchestrator escalates to a forced power cut, and when
	// that wait times out as well the whole operation fails. Exactly two
	// reset actions, never a third.
	err := client.PowerCycleSystem(context.Background(), pollInterval/2)
	require.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, []string{"GracefulShutdown", "ForceOff"}, sim.resets)
}

func TestPowerCycleForcedOffSucceeds(t *testing.T) {
	shortPollInterval(t)

	bmc := newFakeBMC()
	sim := &powerSim{state: "On", follow: false}
	sim.install(bmc)

	// The host ignores the graceful shutdown but honors the forced one.
	bmc.handle(http.MethodPost, systemResetTarget, func(w http.ResponseWriter, r *http.Request) {
		var params map[string]any
		_ = json.NewDecoder(r.Body).Decode(&params)
		resetType, _ := params["ResetType"].(string)
		sim.resets = append(sim.resets, resetType)
		switch resetType {
		case "ForceOff":
			sim.state = "Off"
		case "On":
			sim.state = "On"
		}
		w.WriteHeader(http.StatusNoContent)
	})
	client := newTestClient(t, bmc)

	err := client.PowerCycleSystem(context.Background(), pollInterval/2)
	require.NoError(t, err)
	assert.Equal(t, []string{"GracefulShutdown", "ForceOff", "On"}, sim.resets)
	assert.Equal(t, "On", sim.state)
}

func TestResetSystemValidatesType(t *testing.T) {
	bmc := newFakeBMC()
	sim := &powerSim{state: "On"}
	sim.install(bmc)
	client := newTestClient(t, bmc)

	_, err := client.ResetSystem(context.Background(), "Reboot")
	require.ErrorIs(t, err, ErrInvalidParameterValue)
	assert.Empty(t, sim.resets)
}

func TestResetManager(t *testing.T) {
	bmc := newFakeBMC()
	target := ManagerPath + "/Actions/Manager.Reset"
	bmc.docs[ManagerPath] = map[string]any{
		"Id": "iDRAC.Embedded.1",
		"Actions": map[string]any{
			"#Manager.Reset": map[string]any{
				"target": target,
				"ResetType@Redfish.AllowableValues": []any{"GracefulRestart"},
			},
		},
	}
	bmc.handle(http.MethodPost, target, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	client := newTestClient(t, bmc)

	_, err := client.ResetManager(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, bmc.countRequests(http.MethodPost, target))
}
