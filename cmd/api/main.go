package main

import (
	"context"
	"log"

	"github.com/fieldpulse/daily-pulse-services/api/internal/config"
	"github.com/fieldpulse/daily-pulse-services/api/internal/infrastructure/fcm"
	"github.com/fieldpulse/daily-pulse-services/api/internal/notification"
	"github.com/fieldpulse/daily-pulse-services/api/internal/server"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		cfg.ServerLog.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}

	var dispatcher notification.Dispatcher
	if cfg.FirebaseCredentialsFile != "" {
		app, err := fcm.NewApp(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
		if err != nil {
			cfg.ServerLog.Fatalf("Firebase アプリの初期化に失敗しました: %v", err)
		}
		dispatcher, err = fcm.NewDispatcher(ctx, app)
		if err != nil {
			cfg.ServerLog.Fatalf("FCM クライアントの初期化に失敗しました: %v", err)
		}
	} else {
		cfg.ServerLog.Printf("FIREBASE_CREDENTIALS_FILE 未設定のためプッシュ通知なしで起動します")
	}

	app := server.New(cfg, client, dispatcher)
	if err := app.Run(); err != nil {
		log.Fatalf("サーバー起動に失敗: %v", err)
	}
}
