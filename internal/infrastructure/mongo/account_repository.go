package mongo

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fieldpulse/daily-pulse-services/api/internal/admin/application"
	admindomain "github.com/fieldpulse/daily-pulse-services/api/internal/admin/domain"
	"github.com/fieldpulse/daily-pulse-services/api/internal/notification"
)

// AccountRepository はスタッフ台帳の Mongo 実装。
// 管理者 CRUD、通知パイプラインの Directory ポート、端末トークン登録を 1 つの
// コレクションに対して提供する。
type AccountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository は users コレクションを束縛したリポジトリを生成する。
func NewAccountRepository(db *mongo.Database, collection string) *AccountRepository {
	return &AccountRepository{collection: db.Collection(collection)}
}

// FindAdmins は role=Admin の全アカウントを通知用ビューで返す。
func (r *AccountRepository) FindAdmins(ctx context.Context) ([]notification.Account, error) {
	return r.findNotifiable(ctx, bson.M{"role": string(admindomain.RoleAdmin)})
}

// FindRegionalManagers は担当地域に region を含む RSM を通知用ビューで返す。
func (r *AccountRepository) FindRegionalManagers(ctx context.Context, region string) ([]notification.Account, error) {
	return r.findNotifiable(ctx, bson.M{
		"role":    string(admindomain.RoleRSM),
		"regions": region,
	})
}

func (r *AccountRepository) findNotifiable(ctx context.Context, filter bson.M) ([]notification.Account, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accounts := make([]notification.Account, 0)
	for cursor.Next(ctx) {
		var doc AccountDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		accounts = append(accounts, notification.Account{
			ID:         doc.ID.Hex(),
			Name:       doc.Name,
			PushTokens: append([]string(nil), doc.FCMTokens...),
		})
	}
	return accounts, cursor.Err()
}

// AddPushToken は端末トークンをアカウントへ登録する。$addToSet なので再登録しても重複しない。
func (r *AccountRepository) AddPushToken(ctx context.Context, accountID, token string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(accountID))
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{"$addToSet": bson.M{"fcmTokens": token}})
	return err
}

// Find は役割・地域・キーワードの複合条件で台帳を検索する。
func (r *AccountRepository) Find(ctx context.Context, filter application.AccountFilter, paging application.Paging) ([]admindomain.Account, error) {
	mongoFilter := bson.M{}
	clauses := make([]bson.M, 0)
	if filter.Role != "" {
		clauses = append(clauses, bson.M{"role": string(filter.Role)})
	}
	if filter.Region != "" {
		clauses = append(clauses, bson.M{"regions": filter.Region})
	}
	if filter.Keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Keyword), Options: "i"}
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
		}})
	}
	if len(clauses) == 1 {
		mongoFilter = clauses[0]
	} else if len(clauses) > 1 {
		mongoFilter["$and"] = clauses
	}

	limit := paging.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	skip := 0
	if paging.Page > 1 {
		skip = (paging.Page - 1) * limit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accounts := make([]admindomain.Account, 0)
	for cursor.Next(ctx) {
		var doc AccountDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		accounts = append(accounts, mapAccountDocument(doc))
	}
	return accounts, cursor.Err()
}

// FindByID は 1 アカウントを取得する。
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*admindomain.Account, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	var doc AccountDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	account := mapAccountDocument(doc)
	return &account, nil
}

// FindByRoles は役割の集合に一致するアカウントを返す (RA 記帳対象の候補など)。
func (r *AccountRepository) FindByRoles(ctx context.Context, roles []admindomain.Role) ([]admindomain.Account, error) {
	values := make([]string, 0, len(roles))
	for _, role := range roles {
		values = append(values, string(role))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"role": bson.M{"$in": values}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accounts := make([]admindomain.Account, 0)
	for cursor.Next(ctx) {
		var doc AccountDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		accounts = append(accounts, mapAccountDocument(doc))
	}
	return accounts, cursor.Err()
}

// Create はアカウントを追加し、採番した ID をドメインモデルへ反映する。
func (r *AccountRepository) Create(ctx context.Context, account *admindomain.Account) error {
	doc := AccountDocument{
		ID:        primitive.NewObjectID(),
		Email:     account.Email,
		Name:      account.Name,
		Role:      string(account.Role),
		Regions:   account.Regions,
		FCMTokens: account.PushTokens,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	account.ID = doc.ID.Hex()
	return nil
}

// Update はアカウントの属性を上書きする。トークンは登録 API 経由でのみ変わる。
func (r *AccountRepository) Update(ctx context.Context, account *admindomain.Account) error {
	objectID, err := primitive.ObjectIDFromHex(account.ID)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"email":     account.Email,
		"name":      account.Name,
		"role":      string(account.Role),
		"regions":   account.Regions,
		"updatedAt": account.UpdatedAt,
	}}
	result, err := r.collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// mapAccountDocument は Mongo ドキュメントをドメイン Account へ変換する。
func mapAccountDocument(doc AccountDocument) admindomain.Account {
	return admindomain.Account{
		ID:         doc.ID.Hex(),
		Email:      doc.Email,
		Name:       doc.Name,
		Role:       admindomain.Role(doc.Role),
		Regions:    append([]string(nil), doc.Regions...),
		PushTokens: append([]string(nil), doc.FCMTokens...),
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
