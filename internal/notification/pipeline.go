package notification

import (
	"context"
	"log"
)

// Pipeline はレポート作成イベントを受けてプッシュ通知を配信する一連の処理。
// 宛先解決 → トークン集約 → ペイロード組み立て → 一括送信 → 失敗報告 を直列に実行し、
// 途中で空集合になった時点で正常終了する。呼び出し元へエラーを返すことはない。
type Pipeline struct {
	logger     *log.Logger
	directory  Directory
	dispatcher Dispatcher
	composer   Composer
}

// NewPipeline constructs a pipeline bound to a directory, a dispatcher and a composer.
func NewPipeline(logger *log.Logger, directory Directory, dispatcher Dispatcher, composer Composer) *Pipeline {
	return &Pipeline{
		logger:     logger,
		directory:  directory,
		dispatcher: dispatcher,
		composer:   composer,
	}
}

// HandleReportCreated は 1 件のレポート作成イベントを最後まで処理する。
// バックグラウンドの fire-and-forget 前提なので、失敗はログに残して飲み込む。
func (p *Pipeline) HandleReportCreated(ctx context.Context, ev ReportEvent) Summary {
	if ctx == nil {
		ctx = context.Background()
	}

	recipients := p.resolveRecipients(ctx, ev)
	if len(recipients) == 0 {
		p.logf("通知対象者が見つかりませんでした (Admin/対象地域の RSM なし): reportId=%s", ev.ReportID)
		return Summary{}
	}
	p.logf("通知対象者 %d 名を解決しました: reportId=%s", len(recipients), ev.ReportID)

	tokens := CollectTokens(recipients, ev.SubmittedBy)
	if len(tokens) == 0 {
		p.logf("配信先トークンが 1 件もありません: reportId=%s", ev.ReportID)
		return Summary{}
	}
	p.logf("一意な配信先トークン %d 件を収集しました: reportId=%s", len(tokens), ev.ReportID)

	payload := p.composer.Compose(ev)

	results, err := p.dispatcher.SendMulticast(ctx, payload, tokens)
	if err != nil {
		p.logf("プッシュ通知の一括送信に失敗: reportId=%s err=%v", ev.ReportID, err)
		return Summary{}
	}

	return p.reportFailures(ev.ReportID, tokens, results)
}

// resolveRecipients は Admin 全員と、レポートに地域があればその地域の RSM を集める。
// 2 つの照会は独立しており、片方が失敗しても得られた分だけで処理を続ける。
func (p *Pipeline) resolveRecipients(ctx context.Context, ev ReportEvent) map[string]Account {
	recipients := make(map[string]Account)

	admins, err := p.directory.FindAdmins(ctx)
	if err != nil {
		p.logf("Admin の照会に失敗: %v", err)
	}
	for _, account := range admins {
		recipients[account.ID] = account
	}

	if ev.Region == "" {
		p.logf("レポートに地域が設定されていないため Admin のみへ通知します: reportId=%s", ev.ReportID)
		return recipients
	}

	managers, err := p.directory.FindRegionalManagers(ctx, ev.Region)
	if err != nil {
		p.logf("地域 %s の RSM 照会に失敗: %v", ev.Region, err)
	}
	for _, account := range managers {
		recipients[account.ID] = account
	}

	return recipients
}

// CollectTokens は宛先集合を一意なトークン列に平坦化する。
// 投稿者の除外はここで行う。宛先集合には Admin として残り得るが、トークンは拾わない。
// 同じトークンが複数アカウントに登録されていても 1 度しか現れない。
func CollectTokens(recipients map[string]Account, submitterID string) []string {
	seen := make(map[string]struct{})
	tokens := make([]string, 0)
	for id, account := range recipients {
		if id == submitterID {
			continue
		}
		for _, token := range account.PushTokens {
			if token == "" {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// reportFailures は per-token の結果を検分して失敗分をログへ残す。
// 一部失敗はこのサイクル内では terminal で、再送は行わない。
func (p *Pipeline) reportFailures(reportID string, tokens []string, results []DeliveryResult) Summary {
	summary := Summary{}
	for i, result := range results {
		if result.OK {
			summary.Success++
			continue
		}
		summary.Failure++
		if i < len(tokens) {
			p.logf("トークンへの配信に失敗: token=%s err=%v", tokens[i], result.Err)
		}
	}
	p.logf("配信結果: 成功 %d 件 / 失敗 %d 件: reportId=%s", summary.Success, summary.Failure, reportID)
	return summary
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}
