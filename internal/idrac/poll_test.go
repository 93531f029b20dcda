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
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitUntilImmediateSuccess(t *testing.T) {
	shortPollInterval(t)
	client := newTestClient(t, newFakeBMC())

	polls := 0
	start := time.Now()
	err := client.waitUntil(context.Background(), time.Minute, func(context.Context) (bool, error) {
		polls++
		return true, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, polls)
	assert.Less(t, time.Since(start), pollInterval, "a passing first poll must not sleep")
}

func TestWaitUntilTimesOutAfterFirstPoll(t *testing.T) {
	shortPollInterval(t)
	client := newTestClient(t, newFakeBMC())

	polls := 0
	// Timeout below the poll interval: the loop may not sleep past the
	// deadline, so it gives up after the first attempt.
	err := client.waitUntil(context.Background(), pollInterval/2, func(context.Context) (bool, error) {
		polls++
		return false, nil
	})

	require.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, 1, polls)
}

func TestWaitUntilPropagatesPollError(t *testing.T) {
	shortPollInterval(t)
	client := newTestClient(t, newFakeBMC())

	err := client.waitUntil(context.Background(), time.Minute, func(context.Context) (bool, error) {
		return false, &OperationFailedError{Method: "GET", Path: "/redfish/v1/x", StatusCode: 500}
	})

	var opErr *OperationFailedError
	require.ErrorAs(t, err, &opErr)
}

func TestWaitUntilHonorsCancellation(t *testing.T) {
	shortPollInterval(t)
	client := newTestClient(t, newFakeBMC())

	ctx, cancel := context.WithCancel(context.Background())
	err := client.waitUntil(ctx, 0, func(context.Context) (bool, error) {
		cancel()
		return false, nil
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestWaitForJobState(t *testing.T) {
	shortPollInterval(t)

	bmc := newFakeBMC()
	jobPath := JobsPath + "/JID_123456789012"
	polls := 0
	bmc.handle(http.MethodGet, jobPath, func(w http.ResponseWriter, r *http.Request) {
		polls++
		message := "Job in progress."
		if polls >= 3 {
			message = "Job completed successfully."
		}
		writeJSON(w, http.StatusOK, map[string]any{"Id": "JID_123456789012", "Message": message})
	})
	client := newTestClient(t, bmc)

	err := client.WaitForJobState(context.Background(), "JID_123456789012", JobStateFinished, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 3, polls)
}

func TestWaitForPowerState(t *testing.T) {
	shortPollInterval(t)

	bmc := newFakeBMC()
	state := "On"
	polls := 0
	bmc.handle(http.MethodGet, SystemPath, func(w http.ResponseWriter, r *http.Request) {
		polls++
		if polls >= 2 {
			state = "Off"
		}
		writeJSON(w, http.StatusOK, map[string]any{"PowerState": state})
	})
	client := newTestClient(t, bmc)

	err := client.WaitForPowerState(context.Background(), "Off", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, polls)
}
