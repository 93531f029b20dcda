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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// fakeBMC is an in-process stand-in for an iDRAC: it serves canned JSON
// documents by path, allows per-endpoint handler overrides for actions, and
// records every request it sees.
type fakeBMC struct {
	docs     map[string]map[string]any
	handlers map[string]http.HandlerFunc

	requests []string
}

func newFakeBMC() *fakeBMC {
	return &fakeBMC{
		docs:     make(map[string]map[string]any),
		handlers: make(map[string]http.HandlerFunc),
	}
}

func (f *fakeBMC) handle(method, path string, h http.HandlerFunc) {
	f.handlers[method+" "+path] = h
}

func (f *fakeBMC) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	if h, ok := f.handlers[r.Method+" "+r.URL.Path]; ok {
		h(w, r)
		return
	}

	if doc, ok := f.docs[r.URL.Path]; ok {
		writeJSON(w, http.StatusOK, doc)
		return
	}

	writeJSON(w, http.StatusNotFound, map[string]any{
		"error": map[string]any{
			"@Message.ExtendedInfo": []any{
				map[string]any{"MessageId": "Base.1.0.ResourceMissing", "Message": "no such resource"},
			},
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, doc any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(doc)
}

// countRequests returns how many recorded requests match method and path.
func (f *fakeBMC) countRequests(method, path string) int {
	n := 0
	for _, req := range f.requests {
		if req == method+" "+path {
			n++
		}
	}
	return n
}

func newTestClient(t *testing.T, bmc *fakeBMC) *Client {
	t.Helper()

	srv := httptest.NewServer(bmc)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		Endpoint: srv.URL,
		Username: "root",
		Password: "calvin",
	})
}

// shortPollInterval shrinks the poll interval for the duration of a test so
// wait loops finish quickly.
func shortPollInterval(t *testing.T) {
	t.Helper()

	saved := pollInterval
	pollInterval = 10 * time.Millisecond
	t.Cleanup(func() { pollInterval = saved })
}
