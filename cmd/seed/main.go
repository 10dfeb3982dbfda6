package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	envName         string
	staffCount      int
	reportCount     int
	planCount       int
	raEntryCount    int
	dropCollections bool
	randomSeed      int64
}

type collections struct {
	accounts      string
	reports       string
	plans         string
	raEntries     string
	notifications string
}

type accountDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	Email      string             `bson:"email"`
	Name       string             `bson:"name"`
	Role       string             `bson:"role"`
	Regions    []string           `bson:"regions,omitempty"`
	PushTokens []string           `bson:"fcmTokens,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

type reportMetricsDocument struct {
	OutstandingAmount        float64 `bson:"outstandingAmount"`
	OOWCollection            float64 `bson:"oowCollection"`
	GoodInventoryRealme      int     `bson:"goodInventoryRealme"`
	DefectiveInventoryRealme int     `bson:"defectiveInventoryRealme"`
	RealmeAgreementDispatch  int     `bson:"realmeAgreementDispatch"`
	RealmeSDCollection       int     `bson:"realmeSdCollection"`
	MultibrandSTNDispatched  int     `bson:"multibrandStnDispatched"`
	MultibrandPendingSTNs    int     `bson:"multibrandPendingStns"`
}

type remarkDocument struct {
	Text   string    `bson:"text"`
	ByID   string    `bson:"byId"`
	ByName string    `bson:"byName"`
	Date   time.Time `bson:"date"`
}

type reportDocument struct {
	ID              primitive.ObjectID    `bson:"_id"`
	Date            time.Time             `bson:"date"`
	LocationName    string                `bson:"ascName"`
	Metrics         reportMetricsDocument `bson:"metrics"`
	SubmittedBy     string                `bson:"submittedBy"`
	SubmittedByName string                `bson:"submittedByName"`
	SubmittedByRole string                `bson:"submittedByRole"`
	Region          string                `bson:"submittedByRegion,omitempty"`
	Remarks         []remarkDocument      `bson:"remarks,omitempty"`
	CreatedAt       time.Time             `bson:"createdAt"`
}

type visitPlanDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    string             `bson:"userId"`
	UserName  string             `bson:"userName"`
	Region    string             `bson:"userRegion,omitempty"`
	PlanDate  time.Time          `bson:"planDate"`
	SCName    string             `bson:"scName"`
	Remarks   string             `bson:"remarks,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type raEntryDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Date         time.Time          `bson:"date"`
	OOWConsumed  int                `bson:"oowConsumed"`
	OOWCollected int                `bson:"oowCollected"`
	UserID       string             `bson:"userId"`
	UserName     string             `bson:"userName"`
	UserRole     string             `bson:"userRole"`
	SubmittedBy  string             `bson:"submittedBy"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

type inboxDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    string             `bson:"userId"`
	Message   string             `bson:"message"`
	ReportID  string             `bson:"reportId,omitempty"`
	Type      string             `bson:"type"`
	IsRead    bool               `bson:"isRead"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func main() {
	opts := parseFlags()

	if err := loadEnvFiles(opts.envName); err != nil {
		log.Printf("WARN: 環境変数ファイルの読み込みをスキップ: %v", err)
	}

	cfg := collections{
		accounts:      envOrDefault("ACCOUNT_COLLECTION", "users"),
		reports:       envOrDefault("REPORT_COLLECTION", "reports"),
		plans:         envOrDefault("VISIT_PLAN_COLLECTION", "pjp_plans"),
		raEntries:     envOrDefault("RA_ENTRY_COLLECTION", "ra_entries"),
		notifications: envOrDefault("NOTIFICATION_COLLECTION", "notifications"),
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "daily-pulse")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)

	if opts.dropCollections {
		if err := dropCollections(ctx, db, cfg); err != nil {
			log.Fatalf("コレクション削除に失敗しました: %v", err)
		}
		log.Printf("既存コレクションを削除しました")
	}

	if err := ensureIndexes(ctx, db, cfg); err != nil {
		log.Fatalf("インデックス作成に失敗しました: %v", err)
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))

	staff := generateAccounts(rng, opts.staffCount)
	if err := insertMany(ctx, db.Collection(cfg.accounts), toAnySlice(staff)); err != nil {
		log.Fatalf("ユーザーデータの挿入に失敗しました: %v", err)
	}

	reports := generateReports(rng, staff, opts.reportCount)
	if err := insertMany(ctx, db.Collection(cfg.reports), toAnySlice(reports)); err != nil {
		log.Fatalf("日報データの挿入に失敗しました: %v", err)
	}

	plans := generateVisitPlans(rng, staff, opts.planCount)
	if err := insertMany(ctx, db.Collection(cfg.plans), toAnySlice(plans)); err != nil {
		log.Fatalf("PJP データの挿入に失敗しました: %v", err)
	}

	raEntries := generateRAEntries(rng, staff, opts.raEntryCount)
	if err := insertMany(ctx, db.Collection(cfg.raEntries), toAnySlice(raEntries)); err != nil {
		log.Fatalf("RA 記帳データの挿入に失敗しました: %v", err)
	}

	inbox := generateInboxNotifications(rng, reports)
	if err := insertMany(ctx, db.Collection(cfg.notifications), toAnySlice(inbox)); err != nil {
		log.Fatalf("通知データの挿入に失敗しました: %v", err)
	}

	log.Printf("Seed 完了: users=%d reports=%d plans=%d raEntries=%d notifications=%d",
		len(staff), len(reports), len(plans), len(raEntries), len(inbox))
	log.Printf("Mongo: %s / %s (env=%s)", mongoURI, dbName, opts.envName)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.envName, "env", "local", "env ディレクトリ内の env ファイル名 (例: local, staging)")
	flag.IntVar(&opts.staffCount, "staff", 12, "生成するユーザー数 (Admin/RSM を含む)")
	flag.IntVar(&opts.reportCount, "reports", 60, "生成する日報数")
	flag.IntVar(&opts.planCount, "plans", 20, "生成する PJP 数")
	flag.IntVar(&opts.raEntryCount, "ra", 15, "生成する RA 記帳数")
	flag.BoolVar(&opts.dropCollections, "drop", true, "既存コレクションを削除してから投入する")
	defaultSeed := time.Now().UnixNano()
	flag.Int64Var(&opts.randomSeed, "seed", defaultSeed, "乱数シード（再現用）")
	flag.Parse()

	if opts.staffCount < 4 {
		log.Fatal("staff は 4 以上を指定してください (Admin/RSM の最低構成のため)")
	}
	if opts.reportCount < 0 {
		opts.reportCount = 0
	}
	if opts.planCount < 0 {
		opts.planCount = 0
	}
	if opts.raEntryCount < 0 {
		opts.raEntryCount = 0
	}
	return opts
}

func loadEnvFiles(envName string) error {
	base := filepath.Clean(filepath.Join("..", "env"))
	files := []string{
		filepath.Join(base, "shared.env"),
		filepath.Join(base, fmt.Sprintf("%s.env", envName)),
	}
	for _, file := range files {
		if err := loadEnvFile(file); err != nil {
			return err
		}
	}
	return nil
}

func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s の読み込みに失敗しました: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func dropCollections(ctx context.Context, db *mongo.Database, cfg collections) error {
	for _, name := range []string{
		cfg.accounts, cfg.reports, cfg.plans, cfg.raEntries, cfg.notifications,
	} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			// Drop は存在しない場合も err を返すので warning ログにとどめる
			log.Printf("WARN: コレクション %s の削除に失敗: %v", name, err)
		}
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, cfg collections) error {
	accountIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_account_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}, {Key: "regions", Value: 1}},
			Options: options.Index().SetName("idx_account_role_regions"),
		},
	}
	if _, err := db.Collection(cfg.accounts).Indexes().CreateMany(ctx, accountIndexes); err != nil {
		return err
	}

	reportIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_report_date"),
		},
		{
			Keys:    bson.D{{Key: "submittedBy", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_report_submitter_date"),
		},
		{
			Keys:    bson.D{{Key: "submittedByRegion", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_report_region_date"),
		},
	}
	if _, err := db.Collection(cfg.reports).Indexes().CreateMany(ctx, reportIndexes); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.plans).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "planDate", Value: -1}},
		Options: options.Index().SetName("idx_plan_user_date"),
	}); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.raEntries).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName("idx_ra_user_date"),
	}); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.notifications).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "isRead", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_inbox_user_unread"),
	}); err != nil {
		return err
	}

	return nil
}

func generateAccounts(rng *rand.Rand, count int) []accountDocument {
	now := time.Now().UTC()
	docs := make([]accountDocument, 0, count)

	// 先頭は固定構成: Admin 1名 + 各リージョンの RSM。残りは ASM/User で埋める。
	docs = append(docs, accountDocument{
		ID:         primitive.NewObjectID(),
		Email:      "admin@fieldpulse.example.com",
		Name:       "Priya Sharma",
		Role:       "Admin",
		PushTokens: []string{fakePushToken(rng)},
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	for i, region := range regions {
		if len(docs) >= count {
			break
		}
		docs = append(docs, accountDocument{
			ID:         primitive.NewObjectID(),
			Email:      fmt.Sprintf("rsm.%s@fieldpulse.example.com", strings.ToLower(region)),
			Name:       rsmNames[i%len(rsmNames)],
			Role:       "RSM",
			Regions:    []string{region},
			PushTokens: []string{fakePushToken(rng)},
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	for i := len(docs); i < count; i++ {
		role := "User"
		if rng.Intn(3) == 0 {
			role = "ASM"
		}
		region := regions[rng.Intn(len(regions))]
		var tokens []string
		if rng.Intn(2) == 0 {
			tokens = []string{fakePushToken(rng)}
		}
		docs = append(docs, accountDocument{
			ID:         primitive.NewObjectID(),
			Email:      fmt.Sprintf("staff%02d@fieldpulse.example.com", i),
			Name:       staffNames[i%len(staffNames)],
			Role:       role,
			Regions:    []string{region},
			PushTokens: tokens,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return docs
}

func generateReports(rng *rand.Rand, staff []accountDocument, count int) []reportDocument {
	now := time.Now().UTC()
	docs := make([]reportDocument, 0, count)
	submitters := filterRoles(staff, "User", "ASM")
	if len(submitters) == 0 {
		submitters = staff
	}

	for i := 0; i < count; i++ {
		author := submitters[rng.Intn(len(submitters))]
		region := ""
		if len(author.Regions) > 0 {
			region = author.Regions[0]
		}
		date := now.Add(-time.Duration(rng.Intn(45*24)) * time.Hour).Truncate(24 * time.Hour)

		var remarks []remarkDocument
		if rng.Intn(3) == 0 {
			reviewer := staff[rng.Intn(len(staff))]
			remarks = append(remarks, remarkDocument{
				Text:   remarkTexts[rng.Intn(len(remarkTexts))],
				ByID:   reviewer.ID.Hex(),
				ByName: reviewer.Name,
				Date:   date.Add(time.Duration(1+rng.Intn(48)) * time.Hour),
			})
		}

		docs = append(docs, reportDocument{
			ID:           primitive.NewObjectID(),
			Date:         date,
			LocationName: serviceCenters[rng.Intn(len(serviceCenters))],
			Metrics: reportMetricsDocument{
				OutstandingAmount:        float64(rng.Intn(500000)),
				OOWCollection:            float64(rng.Intn(40000)),
				GoodInventoryRealme:      rng.Intn(120),
				DefectiveInventoryRealme: rng.Intn(30),
				RealmeAgreementDispatch:  rng.Intn(20),
				RealmeSDCollection:       rng.Intn(15),
				MultibrandSTNDispatched:  rng.Intn(60),
				MultibrandPendingSTNs:    rng.Intn(25),
			},
			SubmittedBy:     author.ID.Hex(),
			SubmittedByName: author.Name,
			SubmittedByRole: author.Role,
			Region:          region,
			Remarks:         remarks,
			CreatedAt:       date.Add(time.Duration(rng.Intn(12)) * time.Hour),
		})
	}
	return docs
}

func generateVisitPlans(rng *rand.Rand, staff []accountDocument, count int) []visitPlanDocument {
	now := time.Now().UTC()
	docs := make([]visitPlanDocument, 0, count)
	planners := filterRoles(staff, "ASM", "RSM")
	if len(planners) == 0 {
		planners = staff
	}

	for i := 0; i < count; i++ {
		planner := planners[rng.Intn(len(planners))]
		region := ""
		if len(planner.Regions) > 0 {
			region = planner.Regions[0]
		}
		remarks := ""
		if rng.Intn(2) == 0 {
			remarks = planRemarks[rng.Intn(len(planRemarks))]
		}
		docs = append(docs, visitPlanDocument{
			ID:        primitive.NewObjectID(),
			UserID:    planner.ID.Hex(),
			UserName:  planner.Name,
			Region:    region,
			PlanDate:  now.Add(time.Duration(rng.Intn(14*24)) * time.Hour).Truncate(24 * time.Hour),
			SCName:    serviceCenters[rng.Intn(len(serviceCenters))],
			Remarks:   remarks,
			CreatedAt: now,
		})
	}
	return docs
}

func generateRAEntries(rng *rand.Rand, staff []accountDocument, count int) []raEntryDocument {
	now := time.Now().UTC()
	targets := filterRoles(staff, "ASM", "RSM")
	admins := filterRoles(staff, "Admin")
	if len(targets) == 0 || len(admins) == 0 {
		return nil
	}

	docs := make([]raEntryDocument, 0, count)
	for i := 0; i < count; i++ {
		target := targets[rng.Intn(len(targets))]
		docs = append(docs, raEntryDocument{
			ID:           primitive.NewObjectID(),
			Date:         now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour).Truncate(24 * time.Hour),
			OOWConsumed:  rng.Intn(50),
			OOWCollected: rng.Intn(40),
			UserID:       target.ID.Hex(),
			UserName:     target.Name,
			UserRole:     target.Role,
			SubmittedBy:  admins[rng.Intn(len(admins))].ID.Hex(),
			CreatedAt:    now,
		})
	}
	return docs
}

func generateInboxNotifications(rng *rand.Rand, reports []reportDocument) []inboxDocument {
	var docs []inboxDocument
	for _, report := range reports {
		for _, remark := range report.Remarks {
			if remark.ByID == report.SubmittedBy {
				continue
			}
			docs = append(docs, inboxDocument{
				ID:        primitive.NewObjectID(),
				UserID:    report.SubmittedBy,
				Message:   fmt.Sprintf("%s commented on the report for %q", remark.ByName, report.LocationName),
				ReportID:  report.ID.Hex(),
				Type:      "comment",
				IsRead:    rng.Intn(3) == 0,
				CreatedAt: remark.Date,
			})
		}
	}
	return docs
}

func filterRoles(staff []accountDocument, roles ...string) []accountDocument {
	var out []accountDocument
	for _, account := range staff {
		for _, role := range roles {
			if account.Role == role {
				out = append(out, account)
				break
			}
		}
	}
	return out
}

func fakePushToken(rng *rand.Rand) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	b := make([]byte, 140)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func insertMany(ctx context.Context, col *mongo.Collection, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}

func toAnySlice[T any](in []T) []interface{} {
	out := make([]interface{}, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}

var (
	regions = []string{"North", "South", "East", "West", "HQ"}

	rsmNames = []string{
		"Arjun Mehta", "Kavita Rao", "Sunil Verma", "Deepa Nair", "Rohit Khanna",
	}

	staffNames = []string{
		"Amit Patel", "Sneha Gupta", "Vikram Singh", "Anjali Desai", "Rahul Joshi",
		"Pooja Iyer", "Manish Kumar", "Ritu Agarwal", "Sandeep Reddy", "Neha Kapoor",
		"Karan Malhotra", "Divya Menon",
	}

	serviceCenters = []string{
		"Lucknow Central SC", "Kanpur Mall Road SC", "Varanasi Cantt SC", "Agra Sadar SC",
		"Meerut City SC", "Allahabad Civil Lines SC", "Gorakhpur SC", "Bareilly SC",
	}

	remarkTexts = []string{
		"Please follow up on the pending STNs this week.",
		"Outstanding amount is higher than last month, share the recovery plan.",
		"Good progress on OOW collection. Keep it up.",
		"Defective inventory count looks off, please re-verify.",
	}

	planRemarks = []string{
		"Quarterly audit visit",
		"Inventory reconciliation pending",
		"New SC onboarding support",
		"Escalation follow-up",
	}
)
