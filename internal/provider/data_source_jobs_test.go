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

package provider

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

func TestAccRedfishIdracJobsDataSource(t *testing.T) {
	resource.Test(t, resource.TestCase{
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		PreCheck: func() {
			testAccPreCheck(t)
		},
		Steps: []resource.TestStep{
			{
				Config: testAccRedfishDataSourceJobsConfig(creds, ""),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttrSet("data.idrac-redfish_jobs.jobs", "id"),
				),
			},
			{
				// The filter rejects identifiers which are neither a job id
				// nor an absolute path before any request is made.
				Config:      testAccRedfishDataSourceJobsConfig(creds, "not-a-job-id"),
				ExpectError: regexp.MustCompile("must be either a 'JID_' prefixed job id or an absolute Redfish path"),
			},
		},
	})
}

func testAccRedfishDataSourceJobsConfig(testingInfo TestingServerCredentials, jobID string) string {
	jobFilter := ""
	if jobID != "" {
		jobFilter = fmt.Sprintf("job_id = \"%s\"", jobID)
	}
	return fmt.Sprintf(`
	data "idrac-redfish_jobs" "jobs" {

		server {
		  username     = "%s"
		  password     = "%s"
		  endpoint     = "https://%s"
		  ssl_insecure = true
		}
		  %s
	  }
	`,
		testingInfo.Username,
		testingInfo.Password,
		testingInfo.Endpoint,
		jobFilter,
	)
}
