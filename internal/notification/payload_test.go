package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeBuildsBodyAndLink(t *testing.T) {
	c := NewComposer("https://app.example.com/icon.png", "https://app.example.com/")

	payload := c.Compose(ReportEvent{
		ReportID:        "66cf0a",
		SubmittedByName: "Amit Patel",
		LocationName:    "Kanpur Mall Road SC",
	})

	assert.Equal(t, "New Report Submitted!", payload.Title)
	assert.Equal(t, "Amit Patel just submitted a report for Kanpur Mall Road SC. Tap to view.", payload.Body)
	assert.Equal(t, "https://app.example.com/icon.png", payload.Icon)
	assert.Equal(t, "https://app.example.com/dashboard/reports?view=66cf0a", payload.Link)
}

func TestComposeFallsBackWhenNameAndLocationMissing(t *testing.T) {
	c := NewComposer("", "https://app.example.com")

	payload := c.Compose(ReportEvent{ReportID: "66cf0b", SubmittedByName: "  ", LocationName: ""})

	assert.Equal(t, "A user just submitted a report for a location. Tap to view.", payload.Body)
}

func TestPayloadViewsDeriveFromSameValues(t *testing.T) {
	payload := Payload{
		Title: "New Report Submitted!",
		Body:  "body text",
		Icon:  "https://app.example.com/icon.png",
		Link:  "https://app.example.com/dashboard/reports?view=x",
	}

	data := payload.Data()
	assert.Equal(t, map[string]string{
		"title": payload.Title,
		"body":  payload.Body,
		"icon":  payload.Icon,
		"url":   payload.Link,
	}, data)

	title, body := payload.Notification()
	assert.Equal(t, payload.Title, title)
	assert.Equal(t, payload.Body, body)
}
