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

	"terraform-provider-idrac-redfish/internal/models"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &SystemDataSource{}

func NewSystemDataSource() datasource.DataSource {
	return &SystemDataSource{}
}

// SystemDataSource defines the data source implementation.
type SystemDataSource struct {
	p *IdracProvider
}

func (d *SystemDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + systemName
}

func SystemDataSourceSchema() map[string]schema.Attribute {
	return map[string]schema.Attribute{
		"id": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "ID of the computer system resource.",
			Description:         "ID of the computer system resource.",
		},
		"host_name": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Host name reported by the managed system.",
			Description:         "Host name reported by the managed system.",
		},
		"model": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "System model.",
			Description:         "System model.",
		},
		"manufacturer": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "System manufacturer.",
			Description:         "System manufacturer.",
		},
		"serial_number": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "System serial number.",
			Description:         "System serial number.",
		},
		"bios_version": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Installed BIOS version.",
			Description:         "Installed BIOS version.",
		},
		"power_state": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Current host power state.",
			Description:         "Current host power state.",
		},
		"health": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Rolled up health status of the system.",
			Description:         "Rolled up health status of the system.",
		},
		"memory_gib": schema.Float64Attribute{
			Computed:            true,
			MarkdownDescription: "Total installed system memory in GiB.",
			Description:         "Total installed system memory in GiB.",
		},
		"cpu_count": schema.Int64Attribute{
			Computed:            true,
			MarkdownDescription: "Number of processors.",
			Description:         "Number of processors.",
		},
	}
}

func (d *SystemDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "System data source",
		Description:         "System data source",
		Attributes:          SystemDataSourceSchema(),
		Blocks:              RedfishServerDatasourceBlockMap(),
	}
}

func (d *SystemDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return
	}

	p, ok := req.ProviderData.(*IdracProvider)
	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected *IdracProvider, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)

		return
	}

	d.p = p
}

func (d *SystemDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	tflog.Info(ctx, "data-source-system: read starts")
	var data models.SystemDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	client, err := NewConfig(d.p, &data.RedfishServer)
	if err != nil {
		resp.Diagnostics.AddError("Service Connect Target System Error", err.Error())
		return
	}

	system, err := client.GetSystem(ctx)
	if err != nil {
		resp.Diagnostics.AddError("Could not obtain system resource", err.Error())
		return
	}

	data.Id = types.StringValue(system.StringValue("Id"))
	data.HostName = types.StringValue(system.StringValue("HostName"))
	data.Model = types.StringValue(system.StringValue("Model"))
	data.Manufacturer = types.StringValue(system.StringValue("Manufacturer"))
	data.SerialNumber = types.StringValue(system.StringValue("SerialNumber"))
	data.BiosVersion = types.StringValue(system.StringValue("BiosVersion"))
	data.PowerState = types.StringValue(system.StringValue("PowerState"))

	if status, ok := system["Status"].(map[string]any); ok {
		health, _ := status["Health"].(string)
		data.Health = types.StringValue(health)
	}
	if memory, ok := system["MemorySummary"].(map[string]any); ok {
		gib, _ := memory["TotalSystemMemoryGiB"].(float64)
		data.MemoryGib = types.Float64Value(gib)
	}
	if cpus, ok := system["ProcessorSummary"].(map[string]any); ok {
		count, _ := cpus["Count"].(float64)
		data.CpuCount = types.Int64Value(int64(count))
	}

	tflog.Trace(ctx, "data-source-system: finished reading system")
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
	tflog.Info(ctx, "data-source-system: read ends")
}
