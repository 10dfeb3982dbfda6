package application

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fieldpulse/daily-pulse-services/api/internal/notification"
	"github.com/fieldpulse/daily-pulse-services/api/internal/public/domain"
)

type fakeReportRepo struct {
	createErr error
	created   []*domain.Report

	appendReport *domain.Report
	appendErr    error
}

func (r *fakeReportRepo) Create(_ context.Context, report *domain.Report) error {
	if r.createErr != nil {
		return r.createErr
	}
	report.ID = "rep-1"
	r.created = append(r.created, report)
	return nil
}

func (r *fakeReportRepo) Find(context.Context, ReportFilter, Paging) ([]domain.Report, error) {
	return nil, nil
}

func (r *fakeReportRepo) FindByID(context.Context, string) (*domain.Report, error) {
	return nil, nil
}

func (r *fakeReportRepo) AppendRemark(_ context.Context, _ string, remark domain.Remark) (*domain.Report, error) {
	if r.appendErr != nil {
		return nil, r.appendErr
	}
	report := *r.appendReport
	report.Remarks = append(append([]domain.Remark(nil), report.Remarks...), remark)
	return &report, nil
}

type fakeInboxRepo struct {
	mu      sync.Mutex
	created []*domain.InboxNotification
	err     error
}

func (r *fakeInboxRepo) Create(_ context.Context, n *domain.InboxNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, n)
	return nil
}

func (r *fakeInboxRepo) FindByUser(context.Context, string, Paging) ([]domain.InboxNotification, error) {
	return nil, nil
}

func (r *fakeInboxRepo) MarkRead(context.Context, string, string) error {
	return nil
}

type fakeNotifier struct {
	events chan notification.ReportEvent
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{events: make(chan notification.ReportEvent, 1)}
}

func (n *fakeNotifier) HandleReportCreated(_ context.Context, ev notification.ReportEvent) notification.Summary {
	n.events <- ev
	return notification.Summary{}
}

func (n *fakeNotifier) waitForEvent(t *testing.T) notification.ReportEvent {
	t.Helper()
	select {
	case ev := <-n.events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("notification pipeline was not invoked")
		return notification.ReportEvent{}
	}
}

func testLogger() *log.Logger {
	return log.New(os.Stdout, "[test] ", 0)
}

func TestSubmitStoresReportAndFiresNotification(t *testing.T) {
	repo := &fakeReportRepo{}
	notifier := newFakeNotifier()
	svc := NewReportCommandService(testLogger(), repo, &fakeInboxRepo{}, notifier)

	report, err := svc.Submit(context.Background(), SubmitReportCommand{
		Date:            time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		LocationName:    "  Agra Sadar SC  ",
		SubmittedBy:     "user-1",
		SubmittedByName: "Amit Patel",
		SubmittedByRole: "User",
		Region:          "North",
	})

	assert.NoError(t, err)
	assert.Equal(t, "rep-1", report.ID)
	assert.Equal(t, "Agra Sadar SC", report.LocationName)

	ev := notifier.waitForEvent(t)
	assert.Equal(t, notification.ReportEvent{
		ReportID:        "rep-1",
		SubmittedBy:     "user-1",
		SubmittedByName: "Amit Patel",
		Region:          "North",
		LocationName:    "Agra Sadar SC",
	}, ev)
}

func TestSubmitDoesNotNotifyWhenCreateFails(t *testing.T) {
	repo := &fakeReportRepo{createErr: errors.New("db down")}
	notifier := newFakeNotifier()
	svc := NewReportCommandService(testLogger(), repo, &fakeInboxRepo{}, notifier)

	_, err := svc.Submit(context.Background(), SubmitReportCommand{SubmittedBy: "user-1"})

	assert.Error(t, err)
	select {
	case <-notifier.events:
		t.Fatal("notification pipeline must not run for failed submissions")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubmitWithNilNotifier(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportCommandService(testLogger(), repo, &fakeInboxRepo{}, nil)

	report, err := svc.Submit(context.Background(), SubmitReportCommand{SubmittedBy: "user-1"})

	assert.NoError(t, err)
	assert.NotNil(t, report)
}

func TestAppendRemarkNotifiesParticipantsExceptCommenter(t *testing.T) {
	repo := &fakeReportRepo{
		appendReport: &domain.Report{
			ID:           "rep-1",
			LocationName: "Gorakhpur SC",
			SubmittedBy:  "user-1",
			Remarks: []domain.Remark{
				{ByID: "rsm-1", ByName: "Kavita Rao"},
			},
		},
	}
	inbox := &fakeInboxRepo{}
	svc := NewReportCommandService(testLogger(), repo, inbox, nil)

	report, err := svc.AppendRemark(context.Background(), AppendRemarkCommand{
		ReportID: "rep-1",
		Text:     "Please recheck the pending STNs.",
		ByID:     "admin-1",
		ByName:   "Priya Sharma",
	})

	assert.NoError(t, err)
	assert.Len(t, report.Remarks, 2)

	recipients := make([]string, 0, len(inbox.created))
	for _, n := range inbox.created {
		recipients = append(recipients, n.UserID)
		assert.Equal(t, `Priya Sharma commented on the report for "Gorakhpur SC"`, n.Message)
		assert.Equal(t, "rep-1", n.ReportID)
		assert.Equal(t, domain.InboxTypeComment, n.Type)
	}
	assert.ElementsMatch(t, []string{"user-1", "rsm-1"}, recipients)
}

func TestAppendRemarkCommenterIsSubmitter(t *testing.T) {
	repo := &fakeReportRepo{
		appendReport: &domain.Report{
			ID:           "rep-2",
			LocationName: "Bareilly SC",
			SubmittedBy:  "user-1",
		},
	}
	inbox := &fakeInboxRepo{}
	svc := NewReportCommandService(testLogger(), repo, inbox, nil)

	_, err := svc.AppendRemark(context.Background(), AppendRemarkCommand{
		ReportID: "rep-2",
		Text:     "Self note",
		ByID:     "user-1",
		ByName:   "Amit Patel",
	})

	assert.NoError(t, err)
	assert.Empty(t, inbox.created)
}

func TestAppendRemarkInboxFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeReportRepo{
		appendReport: &domain.Report{
			ID:           "rep-3",
			LocationName: "Meerut City SC",
			SubmittedBy:  "user-1",
		},
	}
	inbox := &fakeInboxRepo{err: errors.New("inbox down")}
	svc := NewReportCommandService(testLogger(), repo, inbox, nil)

	report, err := svc.AppendRemark(context.Background(), AppendRemarkCommand{
		ReportID: "rep-3",
		Text:     "Follow up",
		ByID:     "admin-1",
		ByName:   "Priya Sharma",
	})

	assert.NoError(t, err)
	assert.NotNil(t, report)
}
