package models

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// VirtualDiskInitResourceModel describes the resource data model.
type VirtualDiskInitResourceModel struct {
	Id            types.String    `tfsdk:"id"`
	RedfishServer []RedfishServer `tfsdk:"server"`

	VolumeID          types.String `tfsdk:"volume_id"`
	VolumeName        types.String `tfsdk:"volume_name"`
	Fast              types.Bool   `tfsdk:"fast"`
	WaitForCompletion types.Bool   `tfsdk:"wait_for_completion"`
	MaxWaitTime       types.Int64  `tfsdk:"max_wait_time"`

	JobID    types.String `tfsdk:"job_id"`
	JobState types.String `tfsdk:"job_state"`
}
