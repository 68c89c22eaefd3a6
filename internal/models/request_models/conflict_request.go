package request_models

import "tripcheck/pkg/conflicts"

// DetectOptions leaves unset fields to the server defaults.
type DetectOptions struct {
	MinBufferMinutes   *int  `json:"min_buffer_minutes" form:"min_buffer_minutes" binding:"omitempty,min=0,max=1440"`
	TightBufferMinutes *int  `json:"tight_buffer_minutes" form:"tight_buffer_minutes" binding:"omitempty,min=0,max=1440"`
	LongGapMinutes     *int  `json:"long_gap_minutes" form:"long_gap_minutes" binding:"omitempty,min=0,max=1440"`
	IncludeInfos       *bool `json:"include_infos" form:"include_infos"`
}

// Apply overlays the set fields on base. Negative minutes are ignored.
func (o DetectOptions) Apply(base conflicts.Options) conflicts.Options {
	if o.MinBufferMinutes != nil && *o.MinBufferMinutes >= 0 {
		base.MinBufferMinutes = *o.MinBufferMinutes
	}
	if o.TightBufferMinutes != nil && *o.TightBufferMinutes >= 0 {
		base.TightBufferMinutes = *o.TightBufferMinutes
	}
	if o.LongGapMinutes != nil && *o.LongGapMinutes >= 0 {
		base.LongGapMinutes = *o.LongGapMinutes
	}
	if o.IncludeInfos != nil {
		base.IncludeInfos = *o.IncludeInfos
	}
	return base
}

type DetectConflictsRequest struct {
	Activities []conflicts.Activity `json:"activities" binding:"required,max=500"`
	Options    DetectOptions        `json:"options"`
}
