package public

import (
	"time"

	"github.com/fieldpulse/daily-pulse-services/api/internal/public/domain"
)

// reportMetricsPayload はリクエスト/レスポンス双方で使う数値項目の JSON 形。
type reportMetricsPayload struct {
	OutstandingAmount        float64 `json:"outstandingAmount"`
	OOWCollection            float64 `json:"oowCollection"`
	GoodInventoryRealme      int     `json:"goodInventoryRealme"`
	DefectiveInventoryRealme int     `json:"defectiveInventoryRealme"`
	RealmeAgreementDispatch  int     `json:"realmeAgreementDispatch"`
	RealmeSDCollection       int     `json:"realmeSdCollection"`
	MultibrandSTNDispatched  int     `json:"multibrandStnDispatched"`
	MultibrandPendingSTNs    int     `json:"multibrandPendingStns"`
}

type remarkResponse struct {
	Text   string    `json:"text"`
	ByID   string    `json:"byId"`
	ByName string    `json:"byName"`
	Date   time.Time `json:"date"`
}

type reportResponse struct {
	ID              string               `json:"id"`
	Date            time.Time            `json:"date"`
	ASCName         string               `json:"ascName"`
	Metrics         reportMetricsPayload `json:"metrics"`
	SubmittedBy     string               `json:"submittedBy"`
	SubmittedByName string               `json:"submittedByName"`
	SubmittedByRole string               `json:"submittedByRole,omitempty"`
	Region          string               `json:"submittedByRegion,omitempty"`
	Remarks         []remarkResponse     `json:"remarks,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
}

type planResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Region    string    `json:"userRegion,omitempty"`
	PlanDate  time.Time `json:"planDate"`
	SCName    string    `json:"scName"`
	Remarks   string    `json:"remarks,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type inboxResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ReportID  string    `json:"reportId,omitempty"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// buildReportResponse はドメイン Report をレスポンス形式へ変換する。
func buildReportResponse(report domain.Report, loc *time.Location) reportResponse {
	remarks := make([]remarkResponse, 0, len(report.Remarks))
	for _, remark := range report.Remarks {
		remarks = append(remarks, remarkResponse{
			Text:   remark.Text,
			ByID:   remark.ByID,
			ByName: remark.ByName,
			Date:   remark.Date.In(loc),
		})
	}
	return reportResponse{
		ID:      report.ID,
		Date:    report.Date.In(loc),
		ASCName: report.LocationName,
		Metrics: reportMetricsPayload{
			OutstandingAmount:        report.Metrics.OutstandingAmount,
			OOWCollection:            report.Metrics.OOWCollection,
			GoodInventoryRealme:      report.Metrics.GoodInventoryRealme,
			DefectiveInventoryRealme: report.Metrics.DefectiveInventoryRealme,
			RealmeAgreementDispatch:  report.Metrics.RealmeAgreementDispatch,
			RealmeSDCollection:       report.Metrics.RealmeSDCollection,
			MultibrandSTNDispatched:  report.Metrics.MultibrandSTNDispatched,
			MultibrandPendingSTNs:    report.Metrics.MultibrandPendingSTNs,
		},
		SubmittedBy:     report.SubmittedBy,
		SubmittedByName: report.SubmittedByName,
		SubmittedByRole: report.SubmittedByRole,
		Region:          report.Region,
		Remarks:         remarks,
		CreatedAt:       report.CreatedAt.In(loc),
	}
}

func buildPlanResponse(plan domain.VisitPlan, loc *time.Location) planResponse {
	return planResponse{
		ID:        plan.ID,
		UserID:    plan.UserID,
		UserName:  plan.UserName,
		Region:    plan.Region,
		PlanDate:  plan.PlanDate.In(loc),
		SCName:    plan.SCName,
		Remarks:   plan.Remarks,
		CreatedAt: plan.CreatedAt.In(loc),
	}
}

func buildInboxResponse(n domain.InboxNotification, loc *time.Location) inboxResponse {
	return inboxResponse{
		ID:        n.ID,
		Message:   n.Message,
		ReportID:  n.ReportID,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.In(loc),
	}
}
