package dto

// CategoryCount is one bucket of a group-by-category distribution.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// MonthCount is one calendar-month bucket of the membership trend window.
type MonthCount struct {
	Month string `json:"month"` // "2006-01"
	Count int64  `json:"count"`
}

// ClubRank is one entry of the top-N clubs rollup.
type ClubRank struct {
	ClubID      string `json:"clubId"`
	Name        string `json:"name"`
	MemberCount int64  `json:"memberCount"`
}

// AnalyticsOverview is the dashboard headline rollup. All values are
// recomputed from the store on each request.
type AnalyticsOverview struct {
	TotalClubs          int64           `json:"totalClubs"`
	TotalEvents         int64           `json:"totalEvents"`
	UpcomingEvents      int64           `json:"upcomingEvents"`
	TotalStudents       int64           `json:"totalStudents"`
	ActiveStudents      int64           `json:"activeStudents"`
	PendingMemberships  int64           `json:"pendingMemberships"`
	ApprovedMemberships int64           `json:"approvedMemberships"`
	TopClubs            []ClubRank      `json:"topClubs"`
	MembershipTrend     []MonthCount    `json:"membershipTrend"`
	ClubCategories      []CategoryCount `json:"clubCategories"`
}

// EventAnalytics is the events dashboard rollup.
type EventAnalytics struct {
	Total         int64           `json:"total"`
	Upcoming      int64           `json:"upcoming"`
	ByCategory    []CategoryCount `json:"byCategory"`
	Registrations int64           `json:"registrations"`
	Attended      int64           `json:"attended"`
}

// StudentAnalytics is the students dashboard rollup.
type StudentAnalytics struct {
	Total    int64           `json:"total"`
	Disabled int64           `json:"disabled"`
	ByBranch []CategoryCount `json:"byBranch"`
}
