package domain

import "time"

// ReportMetrics はレポートに添付する業務数値のまとまり。
type ReportMetrics struct {
	OutstandingAmount        float64
	OOWCollection            float64
	GoodInventoryRealme      int
	DefectiveInventoryRealme int
	RealmeAgreementDispatch  int
	RealmeSDCollection       int
	MultibrandSTNDispatched  int
	MultibrandPendingSTNs    int
}

// Remark is one timestamped, attributed comment appended to a report.
type Remark struct {
	Text   string
	ByID   string
	ByName string
	Date   time.Time
}

// Report は 1 日分の活動報告。投稿で一度だけ作成され、以後は所見の追記のみで
// 変更される。削除は管理者に限る。Region は未設定があり得る正当な状態。
type Report struct {
	ID              string
	Date            time.Time
	LocationName    string
	Metrics         ReportMetrics
	SubmittedBy     string
	SubmittedByName string
	SubmittedByRole string
	Region          string
	Remarks         []Remark
	CreatedAt       time.Time
}
