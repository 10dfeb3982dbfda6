package common

const (
	// MaxRequestBody limits JSON request bodies for report/plan/roster endpoints.
	MaxRequestBody = 1 << 20
	// MaxRemarkRunes limits one appended remark's length to keep payloads sane.
	MaxRemarkRunes = 2000
	// MaxPushTokenLength bounds a registered device token string.
	MaxPushTokenLength = 4096
)
