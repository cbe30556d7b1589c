package entities

type KanbanCard struct {
	Request      WarrantyRequestFlow
	SLAInfo      SLADeadlineInfo
	DragDisabled bool
}

type KanbanColumn struct {
	Stage WarrantyStage
	Label string
	Cards []KanbanCard
}

type CategoryBreakdown struct {
	Total         int
	AvgTime       int
	SLACompliance int
}

// WarrantyMetrics is the dashboard aggregate. Hour values are rounded.
type WarrantyMetrics struct {
	TotalOpen          int
	OpenedToday        int
	OpenedThisWeek     int
	OpenedThisMonth    int
	CompletedThisMonth int

	OnTrackCount      int
	WarningCount      int
	ExpiredCount      int
	SLAComplianceRate int

	AverageResolutionTime int
	AverageTimeByStage    map[WarrantyStage]int
	AverageTimeByType     map[string]int

	// BottleneckStage is empty when no non-final stage holds a request.
	BottleneckStage   WarrantyStage
	StageDistribution map[WarrantyStage]int

	ByType     map[string]CategoryBreakdown
	ByPriority map[Priority]int
}
