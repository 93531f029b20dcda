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
	"context"
	"fmt"

	"terraform-provider-idrac-redfish/internal/idrac"
	"terraform-provider-idrac-redfish/internal/models"

	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &IdracResetResource{}

func NewIdracResetResource() resource.Resource {
	return &IdracResetResource{}
}

// IdracResetResource defines the resource implementation.
type IdracResetResource struct {
	p *IdracProvider
}

func (r *IdracResetResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + idracResetName
}

func IdracResetSchema() map[string]schema.Attribute {
	return map[string]schema.Attribute{
		"id": schema.StringAttribute{
			Optional:            true,
			Computed:            true,
			MarkdownDescription: "ID of the iDRAC reset resource.",
			Description:         "ID of the iDRAC reset resource.",
		},
	}
}

func (r *IdracResetResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "This resource is used to gracefully restart the iDRAC itself. The host keeps running while the controller reboots.",
		Description:         "This resource is used to gracefully restart the iDRAC itself.",
		Attributes:          IdracResetSchema(),
		Blocks:              RedfishServerResourceBlockMap(),
	}
}

func (r *IdracResetResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return
	}

	p, ok := req.ProviderData.(*IdracProvider)

	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Resource Configure Type",
			fmt.Sprintf("Expected *IdracProvider, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)

		return
	}

	r.p = p
}

// Create creates the resource and sets the initial Terraform state.
func (r *IdracResetResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	tflog.Info(ctx, "resource-idrac-reset: create starts")
	var plan models.IdracResetResourceModel
	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	var endpoint = plan.RedfishServer[0].Endpoint.ValueString()
	var resource_name = "resource-idrac-reset"
	mutexPool.Lock(ctx, endpoint, resource_name)
	defer mutexPool.Unlock(ctx, endpoint, resource_name)

	client, err := NewConfig(r.p, &plan.RedfishServer)
	if err != nil {
		resp.Diagnostics.AddError("Service Connect Target System Error", err.Error())
		return
	}

	if _, err := client.ResetManager(ctx); err != nil {
		resp.Diagnostics.AddError("iDRAC reset request failed", err.Error())
		return
	}

	plan.Id = types.StringValue(idrac.ManagerPath)
	diags = resp.State.Set(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	tflog.Info(ctx, "resource-idrac-reset: create ends")
}

// Read refreshes the Terraform state with the latest data.
func (r *IdracResetResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	tflog.Info(ctx, "resource-idrac-reset: read starts")
	var state models.IdracResetResourceModel
	diags := req.State.Get(ctx, &state)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	diags = resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)
	tflog.Info(ctx, "resource-idrac-reset: read ends")
}

// Update updates the resource and sets the updated Terraform state on success.
func (r *IdracResetResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	tflog.Info(ctx, "resource-idrac-reset: update starts")
	var plan models.IdracResetResourceModel
	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	diags = resp.State.Set(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	tflog.Info(ctx, "resource-idrac-reset: update ends")
}

// Delete deletes the resource and removes the Terraform state on success.
func (*IdracResetResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	tflog.Info(ctx, "resource-idrac-reset: delete starts")
	resp.State.RemoveResource(ctx)
	tflog.Info(ctx, "resource-idrac-reset: delete ends")
}
