package notification

import (
	"fmt"
	"strings"
)

const (
	payloadTitle  = "New Report Submitted!"
	fallbackName  = "A user"
	fallbackPlace = "a location"
)

// Payload は 1 回の通知サイクルで配信する内容の正本。
// フォアグラウンドのトースト表示とバックグラウンドの Service Worker 表示の両方が
// ここから導出したビューを読むため、文言をビューごとに重複させない。
type Payload struct {
	Title string
	Body  string
	Icon  string
	Link  string
}

// Composer derives payloads from report events using environment-supplied URLs.
type Composer struct {
	iconURL     string
	linkBaseURL string
}

// NewComposer はアイコン URL とアプリのベース URL を束縛した Composer を返す。
func NewComposer(iconURL, linkBaseURL string) Composer {
	return Composer{
		iconURL:     strings.TrimSpace(iconURL),
		linkBaseURL: strings.TrimRight(strings.TrimSpace(linkBaseURL), "/"),
	}
}

// Compose はイベントから配信ペイロードを組み立てる。
// 投稿者名・訪問先が欠けていても配信自体は行うため、既定の文言へ差し替える。
func (c Composer) Compose(ev ReportEvent) Payload {
	name := strings.TrimSpace(ev.SubmittedByName)
	if name == "" {
		name = fallbackName
	}
	place := strings.TrimSpace(ev.LocationName)
	if place == "" {
		place = fallbackPlace
	}

	return Payload{
		Title: payloadTitle,
		Body:  fmt.Sprintf("%s just submitted a report for %s. Tap to view.", name, place),
		Icon:  c.iconURL,
		Link:  fmt.Sprintf("%s/dashboard/reports?view=%s", c.linkBaseURL, ev.ReportID),
	}
}

// Data はバックグラウンド配信エージェントが読む data ブロックを返す。
// プラットフォーム通知ブロックは全環境へ届く保証がないため、描画の正本はこちら。
func (p Payload) Data() map[string]string {
	return map[string]string{
		"title": p.Title,
		"body":  p.Body,
		"icon":  p.Icon,
		"url":   p.Link,
	}
}

// Notification はフォアグラウンド向けのプラットフォーム通知ブロック (title/body) を返す。
func (p Payload) Notification() (title, body string) {
	return p.Title, p.Body
}
