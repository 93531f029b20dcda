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

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

type JobIDValidator struct{}

func (v JobIDValidator) Description(ctx context.Context) string {
	return "Ensures a value is an iDRAC job id ('JID_' prefixed) or an absolute Redfish path."
}

func (v JobIDValidator) MarkdownDescription(ctx context.Context) string {
	return "Ensures a value is an iDRAC job id (**JID_** prefixed) or an absolute Redfish path."
}

func (v JobIDValidator) ValidateString(ctx context.Context, req validator.StringRequest, resp *validator.StringResponse) {
	if req.ConfigValue.IsNull() || req.ConfigValue.IsUnknown() {
		return
	}

	value := req.ConfigValue.ValueString()
	if strings.HasPrefix(value, "JID_") || strings.HasPrefix(value, "/") {
		return
	}

	resp.Diagnostics.AddError(
		"Validation Error",
		fmt.Sprintf("Field '%s' must be either a 'JID_' prefixed job id or an absolute Redfish path, got '%s'.", req.Path.String(), value),
	)
}

func IsJobID() validator.String {
	return JobIDValidator{}
}
