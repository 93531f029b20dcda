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

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &VirtualDisksDataSource{}

func NewVirtualDisksDataSource() datasource.DataSource {
	return &VirtualDisksDataSource{}
}

// VirtualDisksDataSource defines the data source implementation.
type VirtualDisksDataSource struct {
	p *IdracProvider
}

func (d *VirtualDisksDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + virtualDisksName
}

func VirtualDisksDataSourceSchema() map[string]schema.Attribute {
	return map[string]schema.Attribute{
		"id": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "ID of the virtual disks data source.",
			Description:         "ID of the virtual disks data source.",
		},
		"virtual_disks": schema.ListNestedAttribute{
			Computed:            true,
			MarkdownDescription: "Virtual disks across all storage controllers, in controller order.",
			Description:         "Virtual disks across all storage controllers, in controller order.",
			NestedObject: schema.NestedAttributeObject{
				Attributes: map[string]schema.Attribute{
					"odata_id": schema.StringAttribute{
						Computed:            true,
						MarkdownDescription: "Path of the virtual disk resource.",
						Description:         "Path of the virtual disk resource.",
					},
					"disk_id": schema.StringAttribute{
						Computed:            true,
						MarkdownDescription: "Short id of the virtual disk (final path segment).",
						Description:         "Short id of the virtual disk (final path segment).",
					},
					"name": schema.StringAttribute{
						Computed:            true,
						MarkdownDescription: "Name of the virtual disk.",
						Description:         "Name of the virtual disk.",
					},
					"raid_type": schema.StringAttribute{
						Computed:            true,
						MarkdownDescription: "RAID type of the virtual disk.",
						Description:         "RAID type of the virtual disk.",
					},
					"capacity_bytes": schema.Int64Attribute{
						Computed:            true,
						MarkdownDescription: "Capacity of the virtual disk in bytes.",
						Description:         "Capacity of the virtual disk in bytes.",
					},
					"health": schema.StringAttribute{
						Computed:            true,
						MarkdownDescription: "Health status of the virtual disk.",
						Description:         "Health status of the virtual disk.",
					},
					"pending_operations": schema.Int64Attribute{
						Computed:            true,
						MarkdownDescription: "Number of operations currently running against the virtual disk.",
						Description:         "Number of operations currently running against the virtual disk.",
					},
				},
			},
		},
	}
}

func (d *VirtualDisksDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Virtual disks data source",
		Description:         "Virtual disks data source",
		Attributes:          VirtualDisksDataSourceSchema(),
		Blocks:              RedfishServerDatasourceBlockMap(),
	}
}

func (d *VirtualDisksDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
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

func (d *VirtualDisksDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	tflog.Info(ctx, "data-source-virtual-disks: read starts")
	var data models.VirtualDisksDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	client, err := NewConfig(d.p, &data.RedfishServer)
	if err != nil {
		resp.Diagnostics.AddError("Service Connect Target System Error", err.Error())
		return
	}

	volumes, err := client.ListAllVolumes(ctx)
	if err != nil {
		resp.Diagnostics.AddError("Could not obtain list of virtual disks", err.Error())
		return
	}

	for _, volume := range volumes {
		// Topology is stable for the session; detail documents come
		// from the session cache when already fetched.
		detail, err := client.GetCached(ctx, volume.Path)
		if err != nil {
			resp.Diagnostics.AddError("Could not obtain virtual disk details", err.Error())
			return
		}

		disk := models.VirtualDiskModel{
			OdataId:       types.StringValue(volume.Path),
			DiskId:        types.StringValue(volume.ID),
			Name:          types.StringValue(detail.StringValue("Name")),
			RaidType:      types.StringValue(detail.StringValue("RAIDType")),
			CapacityBytes: types.Int64Value(detail.Int64Value("CapacityBytes")),
		}
		if status, ok := detail["Status"].(map[string]any); ok {
			health, _ := status["Health"].(string)
			disk.Health = types.StringValue(health)
		} else {
			disk.Health = types.StringValue("")
		}
		operations, _ := detail["Operations"].([]any)
		disk.PendingOperations = types.Int64Value(int64(len(operations)))
		data.VirtualDisks = append(data.VirtualDisks, disk)
	}

	data.Id = types.StringValue(idrac.StoragePath)

	tflog.Trace(ctx, fmt.Sprintf("data-source-virtual-disks: found %d disks", len(data.VirtualDisks)))
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
	tflog.Info(ctx, "data-source-virtual-disks: read ends")
}
