package models

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// SystemDataSourceModel describes the data source data model.
type SystemDataSourceModel struct {
	Id            types.String    `tfsdk:"id"`
	RedfishServer []RedfishServer `tfsdk:"server"`

	HostName     types.String  `tfsdk:"host_name"`
	Model        types.String  `tfsdk:"model"`
	Manufacturer types.String  `tfsdk:"manufacturer"`
	SerialNumber types.String  `tfsdk:"serial_number"`
	BiosVersion  types.String  `tfsdk:"bios_version"`
	PowerState   types.String  `tfsdk:"power_state"`
	Health       types.String  `tfsdk:"health"`
	MemoryGib    types.Float64 `tfsdk:"memory_gib"`
	CpuCount     types.Int64   `tfsdk:"cpu_count"`
}
