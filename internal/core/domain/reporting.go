package domain

// DashboardMetrics are the headline counts for the dashboard landing
// page. AvailableMembers excludes users currently on approved leave.
type DashboardMetrics struct {
	ActiveTasks      int64 `json:"activeTasks"`
	TasksCompleted   int64 `json:"tasksCompleted"` // completed in the last 7 days
	PendingApprovals int64 `json:"pendingApprovals"`
	TotalMembers     int64 `json:"totalMembers"`
	AvailableMembers int64 `json:"availableMembers"`
}
