package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountDocument は MongoDB 上でのスタッフアカウントのスキーマを Go 構造体として表現したもの。
type AccountDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	Role      string             `bson:"role"`
	Regions   []string           `bson:"regions,omitempty"`
	FCMTokens []string           `bson:"fcmTokens,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// ReportMetricsDocument はレポートドキュメント内の数値項目の埋め込み構造。
type ReportMetricsDocument struct {
	OutstandingAmount        float64 `bson:"outstandingAmount"`
	OOWCollection            float64 `bson:"oowCollection"`
	GoodInventoryRealme      int     `bson:"goodInventoryRealme"`
	DefectiveInventoryRealme int     `bson:"defectiveInventoryRealme"`
	RealmeAgreementDispatch  int     `bson:"realmeAgreementDispatch"`
	RealmeSDCollection       int     `bson:"realmeSdCollection"`
	MultibrandSTNDispatched  int     `bson:"multibrandStnDispatched"`
	MultibrandPendingSTNs    int     `bson:"multibrandPendingStns"`
}

// RemarkDocument は所見 1 件分の埋め込みドキュメント。
type RemarkDocument struct {
	Text   string    `bson:"text"`
	ByID   string    `bson:"byId"`
	ByName string    `bson:"byName"`
	Date   time.Time `bson:"date"`
}

// ReportDocument は日次レポートのスキーマ。submittedByRegion は未設定があり得る。
type ReportDocument struct {
	ID                primitive.ObjectID    `bson:"_id"`
	Date              time.Time             `bson:"date"`
	ASCName           string                `bson:"ascName"`
	Metrics           ReportMetricsDocument `bson:"metrics"`
	SubmittedBy       string                `bson:"submittedBy"`
	SubmittedByName   string                `bson:"submittedByName"`
	SubmittedByRole   string                `bson:"submittedByRole,omitempty"`
	SubmittedByRegion string                `bson:"submittedByRegion,omitempty"`
	Remarks           []RemarkDocument      `bson:"remarks,omitempty"`
	CreatedAt         time.Time             `bson:"createdAt"`
}

// VisitPlanDocument は PJP (訪問計画) のスキーマ。
type VisitPlanDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    string             `bson:"userId"`
	UserName  string             `bson:"userName"`
	Region    string             `bson:"userRegion,omitempty"`
	PlanDate  time.Time          `bson:"planDate"`
	SCName    string             `bson:"scName"`
	Remarks   string             `bson:"remarks,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// RAEntryDocument は RA 記帳エントリのスキーマ。
type RAEntryDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Date         time.Time          `bson:"date"`
	OOWConsumed  int                `bson:"oowConsumed"`
	OOWCollected int                `bson:"oowCollected"`
	UserID       string             `bson:"userId"`
	UserName     string             `bson:"userName,omitempty"`
	UserRole     string             `bson:"userRole,omitempty"`
	SubmittedBy  string             `bson:"submittedBy"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// InboxNotificationDocument はアプリ内通知のスキーマ。
type InboxNotificationDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    string             `bson:"userId"`
	Message   string             `bson:"message"`
	ReportID  string             `bson:"reportId,omitempty"`
	Type      string             `bson:"type"`
	IsRead    bool               `bson:"isRead"`
	CreatedAt time.Time          `bson:"createdAt"`
}
