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
	"errors"
	"fmt"
	"strings"
	"time"

	"terraform-provider-idrac-redfish/internal/idrac"
	"terraform-provider-idrac-redfish/internal/models"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/booldefault"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/int64default"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &VirtualDiskInitResource{}

func NewVirtualDiskInitResource() resource.Resource {
	return &VirtualDiskInitResource{}
}

// VirtualDiskInitResource defines the resource implementation.
type VirtualDiskInitResource struct {
	p *IdracProvider
}

func (*VirtualDiskInitResource) Metadata(_ context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + virtualDiskInitName
}

func VirtualDiskInitSchema() map[string]schema.Attribute {
	const initWaitTime = 1800
	return map[string]schema.Attribute{
		"id": schema.StringAttribute{
			MarkdownDescription: "Path of the initialized virtual disk.",
			Description:         "Path of the initialized virtual disk.",
			Computed:            true,
		},
		"volume_id": schema.StringAttribute{
			MarkdownDescription: "Id of the virtual disk to initialize, either a short id or a full Redfish path. " +
				"Exactly one of 'volume_id' and 'volume_name' must be set.",
			Description: "Id of the virtual disk to initialize, either a short id or a full Redfish path.",
			Optional:    true,
			PlanModifiers: []planmodifier.String{
				stringplanmodifier.RequiresReplaceIfConfigured(),
			},
			Validators: []validator.String{
				stringvalidator.ExactlyOneOf(
					path.MatchRoot("volume_id"),
					path.MatchRoot("volume_name"),
				),
			},
		},
		"volume_name": schema.StringAttribute{
			MarkdownDescription: "Name of the virtual disk to initialize.",
			Description:         "Name of the virtual disk to initialize.",
			Optional:            true,
			PlanModifiers: []planmodifier.String{
				stringplanmodifier.RequiresReplaceIfConfigured(),
			},
		},
		"fast": schema.BoolAttribute{
			MarkdownDescription: "Whether to perform a fast initialization instead of a slow (full) one.",
			Description:         "Whether to perform a fast initialization instead of a slow (full) one.",
			Computed:            true,
			Optional:            true,
			Default:             booldefault.StaticBool(true),
		},
		"wait_for_completion": schema.BoolAttribute{
			MarkdownDescription: "Whether to wait until the initialization job finished.",
			Description:         "Whether to wait until the initialization job finished.",
			Computed:            true,
			Optional:            true,
			Default:             booldefault.StaticBool(false),
		},
		"max_wait_time": schema.Int64Attribute{
			MarkdownDescription: "The maximum duration in seconds to wait for the initialization job to finish.",
			Description:         "The maximum duration in seconds to wait for the initialization job to finish.",
			Computed:            true,
			Optional:            true,
			Default:             int64default.StaticInt64(initWaitTime),
		},
		"job_id": schema.StringAttribute{
			MarkdownDescription: "Id of the scheduled initialization job.",
			Description:         "Id of the scheduled initialization job.",
			Computed:            true,
		},
		"job_state": schema.StringAttribute{
			MarkdownDescription: "Last observed state of the initialization job.",
			Description:         "Last observed state of the initialization job.",
			Computed:            true,
		},
	}
}

func (r *VirtualDiskInitResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "This resource schedules an initialization job for an iDRAC virtual disk.",
		Description:         "This resource schedules an initialization job for an iDRAC virtual disk.",
		Attributes:          VirtualDiskInitSchema(),
		Blocks:              RedfishServerResourceBlockMap(),
	}
}

func (r *VirtualDiskInitResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
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

// resolveVolumePath turns the plan's volume reference into a Redfish path.
func resolveVolumePath(ctx context.Context, client *idrac.Client, plan models.VirtualDiskInitResourceModel) (string, error) {
	if id := plan.VolumeID.ValueString(); id != "" {
		if strings.HasPrefix(id, "/") {
			return id, nil
		}
		volume, err := client.GetVolumeByID(ctx, id)
		if err != nil {
			return "", err
		}
		if volume == nil {
			return "", fmt.Errorf("no virtual disk with id '%s' found on the target system", id)
		}
		return volume.ODataID(), nil
	}

	name := plan.VolumeName.ValueString()
	volume, err := client.GetVolumeByName(ctx, name)
	if err != nil {
		return "", err
	}
	if volume == nil {
		return "", fmt.Errorf("no virtual disk with name '%s' found on the target system", name)
	}
	return volume.ODataID(), nil
}

// Create creates the resource and sets the initial Terraform state.
func (r *VirtualDiskInitResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	tflog.Info(ctx, "resource-virtual-disk-init: create starts")

	var plan models.VirtualDiskInitResourceModel
	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Provide synchronization
	var endpoint string = plan.RedfishServer[0].Endpoint.ValueString()
	var resource_name string = "resource-virtual-disk-init"
	mutexPool.Lock(ctx, endpoint, resource_name)
	defer mutexPool.Unlock(ctx, endpoint, resource_name)

	client, err := NewConfig(r.p, &plan.RedfishServer)
	if err != nil {
		resp.Diagnostics.AddError("Service Connect Target System Error", err.Error())
		return
	}

	volumePath, err := resolveVolumePath(ctx, client, plan)
	if err != nil {
		resp.Diagnostics.AddError("Virtual disk lookup failed", err.Error())
		return
	}

	jid, err := client.InitializeVolume(ctx, volumePath, plan.Fast.ValueBool())
	if err != nil {
		switch {
		case errors.Is(err, idrac.ErrOperationInProgress):
			resp.Diagnostics.AddError("Virtual disk busy",
				"another operation is already running on the virtual disk: "+err.Error())
		case errors.Is(err, idrac.ErrJobSchedulingFailed):
			resp.Diagnostics.AddError("Job scheduling failed", err.Error())
		default:
			resp.Diagnostics.AddError("Virtual disk initialization failed", err.Error())
		}
		return
	}

	tflog.Info(ctx, fmt.Sprintf("resource-virtual-disk-init: scheduled job %s", jid))
	plan.Id = types.StringValue(volumePath)
	plan.JobID = types.StringValue(jid)

	if plan.WaitForCompletion.ValueBool() {
		timeout := time.Duration(plan.MaxWaitTime.ValueInt64()) * time.Second
		err = client.WaitForJobState(ctx, jid, idrac.JobStateFinished, timeout)
		if errors.Is(err, idrac.ErrTimeout) {
			resp.Diagnostics.AddError("Initialization job has not finished within given timeout", err.Error())
			return
		} else if err != nil {
			resp.Diagnostics.AddError("Initialization job wait failed", err.Error())
			return
		}
	}

	job, err := client.GetJob(ctx, jid)
	if err != nil {
		resp.Diagnostics.AddError("Job retrieval failed", err.Error())
		return
	}
	plan.JobState = types.StringValue(idrac.StateOfJob(job).String())

	tflog.Trace(ctx, "resource-virtual-disk-init: create - state update finished")
	diags = resp.State.Set(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	tflog.Info(ctx, "resource-virtual-disk-init: create ends")
}

// Read refreshes the Terraform state with the latest data.
func (r *VirtualDiskInitResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	tflog.Info(ctx, "resource-virtual-disk-init: read starts")
	var state models.VirtualDiskInitResourceModel
	diags := req.State.Get(ctx, &state)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	client, err := NewConfig(r.p, &state.RedfishServer)
	if err != nil {
		resp.Diagnostics.AddError("Service Connect Target System Error", err.Error())
		return
	}

	// Jobs age out of the controller's queue eventually; keep the last
	// observed state when the job is no longer retrievable.
	if jid := state.JobID.ValueString(); jid != "" {
		if job, err := client.GetJob(ctx, jid); err == nil {
			state.JobState = types.StringValue(idrac.StateOfJob(job).String())
		}
	}

	diags = resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)
	tflog.Info(ctx, "resource-virtual-disk-init: read ends")
}

// Update updates the resource and sets the updated Terraform state on success.
func (r *VirtualDiskInitResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	tflog.Info(ctx, "resource-virtual-disk-init: update starts")
	var state, plan models.VirtualDiskInitResourceModel
	diags := req.State.Get(ctx, &state)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	diags = req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	state.WaitForCompletion = plan.WaitForCompletion
	state.MaxWaitTime = plan.MaxWaitTime
	state.RedfishServer = plan.RedfishServer
	diags = resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)
	tflog.Info(ctx, "resource-virtual-disk-init: update ends")
}

// Delete deletes the resource and removes the Terraform state on success.
func (*VirtualDiskInitResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	tflog.Info(ctx, "resource-virtual-disk-init: delete starts")
	resp.State.RemoveResource(ctx)
	tflog.Info(ctx, "resource-virtual-disk-init: delete ends")
}
