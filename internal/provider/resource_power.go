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
	"time"

	"terraform-provider-idrac-redfish/internal/idrac"
	"terraform-provider-idrac-redfish/internal/models"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/stmcginnis/gofish/redfish"

	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/int64default"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &PowerResource{}

func NewPowerResource() resource.Resource {
	return &PowerResource{}
}

// PowerResource defines the resource implementation.
type PowerResource struct {
	p *IdracProvider
}

func (*PowerResource) Metadata(_ context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + powerName
}

// PowerResourceSchema to design the schema for power resource.
func PowerResourceSchema() map[string]schema.Attribute {
	const waitTime = 120
	return map[string]schema.Attribute{
		"id": schema.StringAttribute{
			MarkdownDescription: "ID of the power resource",
			Description:         "ID of the power resource",
			Computed:            true,
		},
		"host_power_action": schema.StringAttribute{
			MarkdownDescription: "Host power settings - Applicable values are 'On','ForceOn','ForceOff','ForceRestart'," +
				"'GracefulRestart','GracefulShutdown','PowerCycle', 'PushPowerButton', 'Nmi'. 'PowerCycle' performs a " +
				"graceful shutdown escalating to a forced power cut, followed by a power on.",
			Description: "Host power settings - Applicable values are 'On','ForceOn','ForceOff','ForceRestart'," +
				"'GracefulRestart','GracefulShutdown','PowerCycle', 'PushPowerButton', 'Nmi'",
			Required: true,
			PlanModifiers: []planmodifier.String{
				stringplanmodifier.RequiresReplaceIfConfigured(),
			},
			Validators: []validator.String{
				stringvalidator.OneOf(
					string(redfish.OnResetType),
					string(redfish.ForceOnResetType),
					string(redfish.ForceOffResetType),
					string(redfish.ForceRestartResetType),
					string(redfish.GracefulRestartResetType),
					string(redfish.GracefulShutdownResetType),
					string(redfish.PushPowerButtonResetType),
					string(redfish.PowerCycleResetType),
					string(redfish.NmiResetType),
				),
			},
		},

		"max_wait_time": schema.Int64Attribute{
			MarkdownDescription: "The maximum duration in seconds to wait for the server to achieve the desired power state before aborting. " +
				"The 'PowerCycle' action applies this budget to each of its phases separately.",
			Description: "The maximum duration in seconds to wait for the server to achieve the desired power state before aborting.",
			Computed:    true,
			Optional:    true,
			Default:     int64default.StaticInt64(waitTime),
		},

		"power_state": schema.StringAttribute{
			MarkdownDescription: "Host power state - might take values: 'On', 'Off'.",
			Description:         "Host power state - might take values: 'On', 'Off'",
			Computed:            true,
		},
	}
}

func (r *PowerResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "iDRAC host power resource",
		Description:         "iDRAC host power resource",
		Attributes:          PowerResourceSchema(),
		Blocks:              RedfishServerResourceBlockMap(),
	}
}

func (r *PowerResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
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

// applyPowerAction executes one power action and waits for the state it is
// expected to produce. Push button and NMI actions have no deterministic
// target state, so those return without waiting.
func applyPowerAction(ctx context.Context, client *idrac.Client, action string, timeout time.Duration) error {
	system, err := client.GetSystem(ctx)
	if err != nil {
		return err
	}
	currentState := system.StringValue("PowerState")

	switch action {
	case string(redfish.PowerCycleResetType):
		return client.PowerCycleSystem(ctx, timeout)

	case string(redfish.OnResetType), string(redfish.ForceOnResetType):
		if currentState == "On" {
			return nil
		}
		if _, err := client.ResetSystem(ctx, action); err != nil {
			return err
		}
		return client.WaitForPowerState(ctx, "On", timeout)

	case string(redfish.ForceOffResetType), string(redfish.GracefulShutdownResetType):
		if currentState == "Off" {
			return nil
		}
		if _, err := client.ResetSystem(ctx, action); err != nil {
			return err
		}
		return client.WaitForPowerState(ctx, "Off", timeout)

	case string(redfish.ForceRestartResetType), string(redfish.GracefulRestartResetType):
		if _, err := client.ResetSystem(ctx, action); err != nil {
			return err
		}
		return client.WaitForPowerState(ctx, "On", timeout)

	default:
		_, err := client.ResetSystem(ctx, action)
		return err
	}
}

// Create creates the resource and sets the initial Terraform state.
func (r *PowerResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	tflog.Info(ctx, "resource-power: create starts")

	var powerPlan models.PowerResourceModel
	diags := req.Plan.Get(ctx, &powerPlan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Provide synchronization
	var endpoint string = powerPlan.RedfishServer[0].Endpoint.ValueString()
	var resource_name string = "resource-power"
	mutexPool.Lock(ctx, endpoint, resource_name)
	defer mutexPool.Unlock(ctx, endpoint, resource_name)

	client, err := NewConfig(r.p, &powerPlan.RedfishServer)
	if err != nil {
		resp.Diagnostics.AddError("Service Connect Target System Error", err.Error())
		return
	}

	system, err := client.GetSystem(ctx)
	if err != nil {
		resp.Diagnostics.AddError("Service Get System Resource Error", err.Error())
		return
	}
	powerPlan.Id = types.StringValue(system.StringValue("Id"))

	powerAction := powerPlan.HostPowerAction.ValueString()
	timeout := time.Duration(powerPlan.MaxWaitTime.ValueInt64()) * time.Second

	if err := applyPowerAction(ctx, client, powerAction, timeout); err != nil {
		if errors.Is(err, idrac.ErrTimeout) {
			resp.Diagnostics.AddError("Host state has not been changed within given timeout", err.Error())
		} else {
			resp.Diagnostics.AddError("Power Operation Error", err.Error())
		}
		return
	}

	system, err = client.GetSystem(ctx)
	if err != nil {
		resp.Diagnostics.AddError("Service Get System Resource Error", err.Error())
		return
	}
	powerPlan.PowerState = types.StringValue(system.StringValue("PowerState"))

	tflog.Trace(ctx, "resource-power: create - state update finished")
	diags = resp.State.Set(ctx, &powerPlan)
	resp.Diagnostics.Append(diags...)
	tflog.Info(ctx, "resource-power: create ends")
}

// Read refreshes the Terraform state with the latest data.
func (r *PowerResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	tflog.Info(ctx, "resource-power: read starts")
	var state models.PowerResourceModel
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

	system, err := client.GetSystem(ctx)
	if err != nil {
		resp.Diagnostics.AddError("system error", err.Error())
		return
	}

	powerState := system.StringValue("PowerState")
	if state.PowerState != types.StringValue(powerState) {
		tflog.Info(ctx, "PowerState different than state, resetting state values.")
		// The host power state drifted since the last apply; clear the
		// action so the next apply triggers it again.
		state.HostPowerAction = types.StringValue("")
	}

	state.PowerState = types.StringValue(powerState)
	tflog.Trace(ctx, "resource-power: read - finished reading state")
	diags = resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)
	tflog.Info(ctx, "resource-power: read ends")
}

// Update updates the resource and sets the updated Terraform state on success.
func (r *PowerResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	tflog.Info(ctx, "resource-power: update starts")
	var state, plan models.PowerResourceModel
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

	state.MaxWaitTime = plan.MaxWaitTime
	state.RedfishServer = plan.RedfishServer
	tflog.Trace(ctx, "resource-power: update - state update finished")
	diags = resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)
	tflog.Info(ctx, "resource-power: update ends")
}

// Delete deletes the resource and removes the Terraform state on success.
func (*PowerResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	tflog.Info(ctx, "resource-power: delete starts")
	resp.State.RemoveResource(ctx)
	tflog.Info(ctx, "resource-power: delete ends")
}
