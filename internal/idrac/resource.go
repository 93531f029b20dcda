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

import "path"

// Well known singleton and collection paths on the iDRAC. These are fixed
// by the firmware and not configurable.
const (
	SystemPath  = "/redfish/v1/Systems/System.Embedded.1"
	ManagerPath = "/redfish/v1/Managers/iDRAC.Embedded.1"
	StoragePath = "/redfish/v1/Systems/System.Embedded.1/Storage"
	JobsPath    = "/redfish/v1/Managers/iDRAC.Embedded.1/Jobs"
)

// locationKey is the synthetic field the transport layer adds to every
// decoded document, carrying the Location response header. Job ids for
// scheduled operations are delivered through it.
const locationKey = "_location"

// Resource is an untyped Redfish document as returned by the controller.
type Resource map[string]any

// StringValue returns the named field as a string, or "" when the field is
// absent or not a string.
func (r Resource) StringValue(key string) string {
	s, _ := r[key].(string)
	return s
}

// Int64Value returns the named field as an int64. JSON numbers decode as
// float64, so the value is truncated.
func (r Resource) Int64Value(key string) int64 {
	f, _ := r[key].(float64)
	return int64(f)
}

// ODataID returns the document's own path.
func (r Resource) ODataID() string {
	return r.StringValue("@odata.id")
}

// Location returns the Location header captured when the document was
// fetched, or "" if the response carried none.
func (r Resource) Location() string {
	return r.StringValue(locationKey)
}

// Member is a reference to one entry of a Redfish collection. ID is the
// short identifier derived from the final path segment.
type Member struct {
	Path string
	ID   string
}

// memberRefs extracts the Members list of a container resource.
func memberRefs(container Resource) []Member {
	raw, _ := container["Members"].([]any)

	members := make([]Member, 0, len(raw))
	for _, entry := range raw {
		ref, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		uri, _ := ref["@odata.id"].(string)
		if uri == "" {
			continue
		}
		members = append(members, Member{Path: uri, ID: path.Base(uri)})
	}

	return members
}
