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
	"terraform-provider-idrac-redfish/internal/validators"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &JobsDataSource{}

func NewJobsDataSource() datasource.DataSource {
	return &JobsDataSource{}
}

// JobsDataSource defines the data source implementation.
type JobsDataSource struct {
	p *IdracProvider
}

func (d *JobsDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + jobsName
}

func JobsDataSourceSchema() map[string]schema.Attribute {
	return map[string]schema.Attribute{
		"id": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "ID of the jobs data source.",
			Description:         "ID of the jobs data source.",
		},
		"job_id": schema.StringAttribute{
			Optional: true,
			MarkdownDescription: "Limit the result to a single job, referenced either by a 'JID_' prefixed " +
				"job id or by an absolute Redfish path. When unset, all jobs known to the controller are returned.",
			Description: "Limit the result to a single job, referenced either by a 'JID_' prefixed job id or by an absolute Redfish path.",
			Validators: []validator.String{
				validators.IsJobID(),
			},
		},
		"jobs": schema.ListNestedAttribute{
			Computed:            true,
			MarkdownDescription: "Jobs reported by the controller.",
			Description:         "Jobs reported by the controller.",
			NestedObject: schema.NestedAttributeObject{
				Attributes: map[string]schema.Attribute{
					"odata_id": schema.StringAttribute{
						Computed:            true,
						MarkdownDescription: "Path of the job resource.",
						Description:         "Path of the job resource.",
					},
					"job_id": schema.StringAttribute{
						Computed:            true,
						MarkdownDescription: "Short id of the job (final path segment).",
						Description:         "Short id of the job (final path segment).",
					},
					"name": schema.StringAttribute{
						Computed:            true,
						MarkdownDescription: "Name of the job.",
						Description:         "Name of the job.",
					},
					"job_type": schema.StringAttribute{
						Computed:            true,
						MarkdownDescription: "Type of the job.",
						Description:         "Type of the job.",
					},
					"message": schema.StringAttribute{
						Computed:            true,
						MarkdownDescription: "Last status message reported for the job.",
						Description:         "Last status message reported for the job.",
					},
					"state": schema.StringAttribute{
						Computed:            true,
						MarkdownDescription: "Classified job state: 'scheduled', 'running', 'finished', 'failed' or 'unknown'.",
						Description:         "Classified job state: 'scheduled', 'running', 'finished', 'failed' or 'unknown'.",
					},
				},
			},
		},
	}
}

func (d *JobsDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Jobs data source",
		Description:         "Jobs data source",
		Attributes:          JobsDataSourceSchema(),
		Blocks:              RedfishServerDatasourceBlockMap(),
	}
}

func (d *JobsDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
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

func newJobModel(job idrac.Resource) models.JobModel {
	jobPath := job.ODataID()
	return models.JobModel{
		OdataId: types.StringValue(jobPath),
		JobID:   types.StringValue(job.StringValue("Id")),
		Name:    types.StringValue(job.StringValue("Name")),
		JobType: types.StringValue(job.StringValue("JobType")),
		Message: types.StringValue(job.StringValue("Message")),
		State:   types.StringValue(idrac.StateOfJob(job).String()),
	}
}

func (d *JobsDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	tflog.Info(ctx, "data-source-jobs: read starts")
	var data models.JobsDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	client, err := NewConfig(d.p, &data.RedfishServer)
	if err != nil {
		resp.Diagnostics.AddError("Service Connect Target System Error", err.Error())
		return
	}

	if jid := data.JobID.ValueString(); jid != "" {
		job, err := client.GetJob(ctx, jid)
		if err != nil {
			resp.Diagnostics.AddError("Could not obtain requested job", err.Error())
			return
		}
		data.Jobs = append(data.Jobs, newJobModel(job))
	} else {
		jobs, err := client.ListJobDetails(ctx)
		if err != nil {
			resp.Diagnostics.AddError("Could not obtain list of jobs", err.Error())
			return
		}
		for _, job := range jobs {
			data.Jobs = append(data.Jobs, newJobModel(job))
		}
	}

	data.Id = types.StringValue(idrac.JobsPath)

	tflog.Trace(ctx, fmt.Sprintf("data-source-jobs: found %d jobs", len(data.Jobs)))
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
	tflog.Info(ctx, "data-source-jobs: read ends")
}
