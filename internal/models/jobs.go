package models

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// JobsDataSourceModel describes the data source data model.
type JobsDataSourceModel struct {
	Id            types.String    `tfsdk:"id"`
	RedfishServer []RedfishServer `tfsdk:"server"`

	JobID types.String `tfsdk:"job_id"`

	Jobs []JobModel `tfsdk:"jobs"`
}

type JobModel struct {
	OdataId types.String `tfsdk:"odata_id"`
	JobID   types.String `tfsdk:"job_id"`
	Name    types.String `tfsdk:"name"`
	JobType types.String `tfsdk:"job_type"`
	Message types.String `tfsdk:"message"`
	State   types.String `tfsdk:"state"`
}
