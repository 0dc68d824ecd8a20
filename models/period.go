package models

// PeriodRequest identifies a time range of one calendar day for deletion.
type PeriodRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Timezone  string `json:"timezone"`
}

// DeletePeriodRequest is a single-period delete for one veterinarian.
type DeletePeriodRequest struct {
	VetID string `json:"vetId"`
	PeriodRequest
}

// DeletePeriodsRequest is a batch of periods for one veterinarian.
type DeletePeriodsRequest struct {
	VetID   string          `json:"vetId"`
	Periods []PeriodRequest `json:"periods"`
}

// PeriodSuccess records a period whose slots were deleted.
type PeriodSuccess struct {
	Period       PeriodRequest `json:"period"`
	DeletedCount int           `json:"deletedCount"`
}

// PeriodFailure records a period that was skipped.
type PeriodFailure struct {
	Period           PeriodRequest `json:"period"`
	Error            string        `json:"error"`
	BookedSlotsCount int           `json:"bookedSlotsCount"`
}

// BulkDeleteSummary aggregates a batch outcome.
type BulkDeleteSummary struct {
	TotalPeriods      int `json:"totalPeriods"`
	SuccessfulPeriods int `json:"successfulPeriods"`
	FailedPeriods     int `json:"failedPeriods"`
	TotalSlotsDeleted int `json:"totalSlotsDeleted"`
}

// BulkDeleteResult is returned by a batch period deletion.
type BulkDeleteResult struct {
	Success      bool              `json:"success"`
	TotalDeleted int               `json:"totalDeleted"`
	Successes    []PeriodSuccess   `json:"successes"`
	Errors       []PeriodFailure   `json:"errors"`
	Summary      BulkDeleteSummary `json:"summary"`
}

// DeleteByIDResult is returned by delete-by-id.
type DeleteByIDResult struct {
	DeletedCount   int `json:"deletedCount"`
	RequestedCount int `json:"requestedCount"`
	FoundCount     int `json:"foundCount"`
}
