package notification

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDirectory struct {
	admins     []Account
	adminsErr  error
	managers   map[string][]Account
	managerErr error

	managerQueries []string
}

func (d *fakeDirectory) FindAdmins(context.Context) ([]Account, error) {
	return d.admins, d.adminsErr
}

func (d *fakeDirectory) FindRegionalManagers(_ context.Context, region string) ([]Account, error) {
	d.managerQueries = append(d.managerQueries, region)
	if d.managerErr != nil {
		return nil, d.managerErr
	}
	return d.managers[region], nil
}

type fakeDispatcher struct {
	results []DeliveryResult
	err     error

	calls  int
	tokens []string
}

func (f *fakeDispatcher) SendMulticast(_ context.Context, _ Payload, tokens []string) ([]DeliveryResult, error) {
	f.calls++
	f.tokens = append([]string(nil), tokens...)
	if f.err != nil {
		return nil, f.err
	}
	if f.results != nil {
		return f.results, nil
	}
	results := make([]DeliveryResult, len(tokens))
	for i := range results {
		results[i] = DeliveryResult{OK: true}
	}
	return results, nil
}

func newTestPipeline(dir Directory, disp Dispatcher) *Pipeline {
	logger := log.New(os.Stdout, "[test] ", 0)
	return NewPipeline(logger, dir, disp, NewComposer("https://app.example.com/icon.png", "https://app.example.com"))
}

func TestHandleReportCreatedNotifiesAdminsAndRegionalManagers(t *testing.T) {
	dir := &fakeDirectory{
		admins: []Account{
			{ID: "admin-1", Name: "管理者", PushTokens: []string{"tok-admin"}},
		},
		managers: map[string][]Account{
			"North": {
				{ID: "rsm-1", Name: "北担当", PushTokens: []string{"tok-rsm"}},
			},
		},
	}
	disp := &fakeDispatcher{}
	p := newTestPipeline(dir, disp)

	summary := p.HandleReportCreated(context.Background(), ReportEvent{
		ReportID:        "rep-1",
		SubmittedBy:     "user-1",
		SubmittedByName: "Amit",
		Region:          "North",
		LocationName:    "Lucknow Central SC",
	})

	assert.Equal(t, 1, disp.calls)
	assert.ElementsMatch(t, []string{"tok-admin", "tok-rsm"}, disp.tokens)
	assert.Equal(t, Summary{Success: 2}, summary)
	assert.Equal(t, []string{"North"}, dir.managerQueries)
}

func TestHandleReportCreatedWithoutRegionSkipsManagerQuery(t *testing.T) {
	dir := &fakeDirectory{
		admins: []Account{{ID: "admin-1", PushTokens: []string{"tok-admin"}}},
	}
	disp := &fakeDispatcher{}
	p := newTestPipeline(dir, disp)

	summary := p.HandleReportCreated(context.Background(), ReportEvent{
		ReportID:    "rep-2",
		SubmittedBy: "user-1",
	})

	assert.Empty(t, dir.managerQueries)
	assert.Equal(t, 1, disp.calls)
	assert.Equal(t, Summary{Success: 1}, summary)
}

func TestHandleReportCreatedNoRecipientsSkipsDispatch(t *testing.T) {
	dir := &fakeDirectory{}
	disp := &fakeDispatcher{}
	p := newTestPipeline(dir, disp)

	summary := p.HandleReportCreated(context.Background(), ReportEvent{ReportID: "rep-3", Region: "South"})

	assert.Zero(t, disp.calls)
	assert.Equal(t, Summary{}, summary)
}

func TestHandleReportCreatedSubmitterOnlyRecipientSkipsDispatch(t *testing.T) {
	// 投稿者自身が唯一の Admin の場合、トークンが 1 件も残らず配信は行われない。
	dir := &fakeDirectory{
		admins: []Account{{ID: "admin-1", PushTokens: []string{"tok-admin"}}},
	}
	disp := &fakeDispatcher{}
	p := newTestPipeline(dir, disp)

	summary := p.HandleReportCreated(context.Background(), ReportEvent{
		ReportID:    "rep-4",
		SubmittedBy: "admin-1",
	})

	assert.Zero(t, disp.calls)
	assert.Equal(t, Summary{}, summary)
}

func TestHandleReportCreatedDirectoryFailuresAreIsolated(t *testing.T) {
	dir := &fakeDirectory{
		adminsErr: errors.New("directory down"),
		managers: map[string][]Account{
			"West": {{ID: "rsm-1", PushTokens: []string{"tok-rsm"}}},
		},
	}
	disp := &fakeDispatcher{}
	p := newTestPipeline(dir, disp)

	summary := p.HandleReportCreated(context.Background(), ReportEvent{
		ReportID:    "rep-5",
		SubmittedBy: "user-1",
		Region:      "West",
	})

	assert.Equal(t, 1, disp.calls)
	assert.Equal(t, []string{"tok-rsm"}, disp.tokens)
	assert.Equal(t, Summary{Success: 1}, summary)
}

func TestHandleReportCreatedTransportErrorIsSwallowed(t *testing.T) {
	dir := &fakeDirectory{
		admins: []Account{{ID: "admin-1", PushTokens: []string{"tok-admin"}}},
	}
	disp := &fakeDispatcher{err: errors.New("fcm unreachable")}
	p := newTestPipeline(dir, disp)

	summary := p.HandleReportCreated(context.Background(), ReportEvent{
		ReportID:    "rep-6",
		SubmittedBy: "user-1",
	})

	assert.Equal(t, 1, disp.calls)
	assert.Equal(t, Summary{}, summary)
}

func TestHandleReportCreatedCountsPartialFailures(t *testing.T) {
	dir := &fakeDirectory{
		admins: []Account{
			{ID: "admin-1", PushTokens: []string{"tok-1", "tok-2", "tok-3"}},
			{ID: "admin-2", PushTokens: []string{"tok-4", "tok-5"}},
		},
	}
	disp := &fakeDispatcher{
		results: []DeliveryResult{
			{OK: true},
			{OK: false, Err: errors.New("unregistered")},
			{OK: true},
			{OK: false, Err: errors.New("invalid token")},
			{OK: true},
		},
	}
	p := newTestPipeline(dir, disp)

	summary := p.HandleReportCreated(context.Background(), ReportEvent{
		ReportID:    "rep-7",
		SubmittedBy: "user-1",
	})

	assert.Equal(t, Summary{Success: 3, Failure: 2}, summary)
}

func TestCollectTokens(t *testing.T) {
	tests := []struct {
		name        string
		recipients  map[string]Account
		submitterID string
		want        []string
	}{
		{
			name: "submitter tokens excluded",
			recipients: map[string]Account{
				"admin-1": {ID: "admin-1", PushTokens: []string{"tok-a"}},
				"user-1":  {ID: "user-1", PushTokens: []string{"tok-b"}},
			},
			submitterID: "user-1",
			want:        []string{"tok-a"},
		},
		{
			name: "shared token appears once",
			recipients: map[string]Account{
				"admin-1": {ID: "admin-1", PushTokens: []string{"tok-shared", "tok-a"}},
				"rsm-1":   {ID: "rsm-1", PushTokens: []string{"tok-shared"}},
			},
			submitterID: "user-1",
			want:        []string{"tok-a", "tok-shared"},
		},
		{
			name: "empty tokens dropped",
			recipients: map[string]Account{
				"admin-1": {ID: "admin-1", PushTokens: []string{"", "tok-a", ""}},
			},
			submitterID: "user-1",
			want:        []string{"tok-a"},
		},
		{
			name:        "no recipients",
			recipients:  map[string]Account{},
			submitterID: "user-1",
			want:        []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectTokens(tt.recipients, tt.submitterID)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}
