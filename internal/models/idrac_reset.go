package models

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// IdracResetResourceModel describes the resource data model.
type IdracResetResourceModel struct {
	Id            types.String    `tfsdk:"id"`
	RedfishServer []RedfishServer `tfsdk:"server"`
}
