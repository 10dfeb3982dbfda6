package public

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fieldpulse/daily-pulse-services/api/internal/interfaces/http/common"
	publicapp "github.com/fieldpulse/daily-pulse-services/api/internal/public/application"
	"github.com/fieldpulse/daily-pulse-services/api/internal/public/domain"
)

type fakeReportCommands struct {
	submitted []publicapp.SubmitReportCommand
	submitErr error
}

func (f *fakeReportCommands) Submit(_ context.Context, cmd publicapp.SubmitReportCommand) (*domain.Report, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, cmd)
	return &domain.Report{
		ID:              "rep-1",
		Date:            cmd.Date,
		LocationName:    cmd.LocationName,
		Metrics:         cmd.Metrics,
		SubmittedBy:     cmd.SubmittedBy,
		SubmittedByName: cmd.SubmittedByName,
		SubmittedByRole: cmd.SubmittedByRole,
		Region:          cmd.Region,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

func (f *fakeReportCommands) AppendRemark(context.Context, publicapp.AppendRemarkCommand) (*domain.Report, error) {
	return nil, nil
}

func newTestHandler(commands publicapp.ReportCommandService) *Handler {
	return NewHandler(Config{
		Logger:         log.New(os.Stdout, "[test] ", 0),
		ReportCommands: commands,
		Location:       time.UTC,
	})
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	user := common.AuthenticatedUser{
		ID:      "user-1",
		Name:    "Amit Patel",
		Role:    "User",
		Regions: []string{"north"},
	}
	return req.WithContext(common.ContextWithUser(req.Context(), user))
}

func TestReportCreateHandler(t *testing.T) {
	commands := &fakeReportCommands{}
	h := newTestHandler(commands)

	body := `{"date":"2025-03-10","ascName":"Agra Sadar SC","metrics":{"outstandingAmount":1200,"oowCollection":300}}`
	rec := httptest.NewRecorder()
	h.reportCreateHandler()(rec, authedRequest(http.MethodPost, "/reports", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	if assert.Len(t, commands.submitted, 1) {
		cmd := commands.submitted[0]
		assert.Equal(t, "Agra Sadar SC", cmd.LocationName)
		assert.Equal(t, "user-1", cmd.SubmittedBy)
		assert.Equal(t, "North", cmd.Region)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), cmd.Date)
	}
}

func TestReportCreateHandlerRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing asc name", body: `{"date":"2025-03-10","metrics":{}}`},
		{name: "missing date", body: `{"ascName":"Agra Sadar SC","metrics":{}}`},
		{name: "bad date format", body: `{"date":"10-03-2025","ascName":"Agra Sadar SC","metrics":{}}`},
		{name: "negative metric", body: `{"date":"2025-03-10","ascName":"Agra Sadar SC","metrics":{"outstandingAmount":-5}}`},
		{name: "unknown field", body: `{"date":"2025-03-10","ascName":"Agra Sadar SC","metrics":{},"extra":true}`},
		{name: "not json", body: `report please`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commands := &fakeReportCommands{}
			h := newTestHandler(commands)

			rec := httptest.NewRecorder()
			h.reportCreateHandler()(rec, authedRequest(http.MethodPost, "/reports", tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, commands.submitted)
		})
	}
}

func TestReportCreateHandlerWithoutAuthenticatedUser(t *testing.T) {
	h := newTestHandler(&fakeReportCommands{})

	body := `{"date":"2025-03-10","ascName":"Agra Sadar SC","metrics":{}}`
	rec := httptest.NewRecorder()
	h.reportCreateHandler()(rec, httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
