package entity

type Credibility struct {
	UserID          string  `json:"user_id"`
	TotalReports    int64   `json:"total_reports"`
	ApprovedReports int64   `json:"approved_reports"`
	Score           float64 `json:"credibility_score"`
}

type ProblematicReporter struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	IsBanned    bool   `json:"is_banned"`
	ReportCount int64  `json:"report_count"`
}
