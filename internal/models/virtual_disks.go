package models

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// VirtualDisksDataSourceModel describes the data source data model.
type VirtualDisksDataSourceModel struct {
	Id            types.String    `tfsdk:"id"`
	RedfishServer []RedfishServer `tfsdk:"server"`

	VirtualDisks []VirtualDiskModel `tfsdk:"virtual_disks"`
}

type VirtualDiskModel struct {
	OdataId       types.String `tfsdk:"odata_id"`
	DiskId        types.String `tfsdk:"disk_id"`
	Name          types.String `tfsdk:"name"`
	RaidType      types.String `tfsdk:"raid_type"`
	CapacityBytes types.Int64  `tfsdk:"capacity_bytes"`
	Health        types.String `tfsdk:"health"`

	// Number of operations currently running against the disk, such as an
	// initialization in progress.
	PendingOperations types.Int64 `tfsdk:"pending_operations"`
}
