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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testVolumePath       = "/redfish/v1/Systems/System.Embedded.1/Storage/RAID.SL.3-1/Volumes/Disk.Virtual.0"
	testVolumeInitTarget = testVolumePath + "/Actions/Volume.Initialize"
)

func volumeWithInitAction() map[string]any {
	return map[string]any{
		"@odata.id": testVolumePath,
		"Id":        "Disk.Virtual.0",
		"Name":      "scratch",
		"Actions": map[string]any{
			"#Volume.Initialize": map[string]any{
				"target": testVolumeInitTarget,
				"InitializeType@Redfish.AllowableValues": []any{"Fast", "Slow"},
			},
		},
	}
}

func TestInvokeActionPostsValidatedParams(t *testing.T) {
	bmc := newFakeBMC()
	bmc.docs[testVolumePath] = volumeWithInitAction()

	var posted map[string]any
	bmc.handle(http.MethodPost, testVolumeInitTarget, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		w.Header().Set("Location", JobsPath+"/JID_000000001234")
		w.WriteHeader(http.StatusAccepted)
	})
	client := newTestClient(t, bmc)

	res, err := client.InvokeAction(context.Background(), testVolumePath, "#Volume.Initialize", map[string]any{
		"InitializeType": "Fast",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"InitializeType": "Fast"}, posted)
	assert.Equal(t, JobsPath+"/JID_000000001234", res.Location())
}

func TestInvokeActionUnknownAction(t *testing.T) {
	bmc := newFakeBMC()
	bmc.docs[testVolumePath] = volumeWithInitAction()
	client := newTestClient(t, bmc)

	_, err := client.InvokeAction(context.Background(), testVolumePath, "#Volume.CheckConsistency", nil)
	require.ErrorIs(t, err, ErrActionNotFound)
}

func TestInvokeActionUnknownParameter(t *testing.T) {
	bmc := newFakeBMC()
	bmc.docs[testVolumePath] = volumeWithInitAction()
	client := newTestClient(t, bmc)

	_, err := client.InvokeAction(context.Background(), testVolumePath, "#Volume.Initialize", map[string]any{
		"Mode": "Fast",
	})
	require.ErrorIs(t, err, ErrUnknownParameter)
	assert.Equal(t, 0, bmc.countRequests(http.MethodPost, testVolumeInitTarget))
}

func TestInvokeActionRejectsDisallowedValue(t *testing.T) {
	bmc := newFakeBMC()
	bmc.docs[testVolumePath] = volumeWithInitAction()
	client := newTestClient(t, bmc)
	ctx := context.Background()

	// Prime the cache, then verify validation happens without any
	// further network traffic.
	_, err := client.GetCached(ctx, testVolumePath)
	require.NoError(t, err)
	before := len(bmc.requests)

	_, err = client.InvokeAction(ctx, testVolumePath, "#Volume.Initialize", map[string]any{
		"InitializeType": "Medium",
	})
	require.ErrorIs(t, err, ErrInvalidParameterValue)
	assert.Equal(t, before, len(bmc.requests))
}
