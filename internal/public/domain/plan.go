package domain

import "time"

// VisitPlan は PJP (訪問計画) の 1 件分。
type VisitPlan struct {
	ID        string
	UserID    string
	UserName  string
	Region    string
	PlanDate  time.Time
	SCName    string
	Remarks   string
	CreatedAt time.Time
}
