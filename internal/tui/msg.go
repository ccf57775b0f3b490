package tui

import "github.com/facet-dev/facet/internal/review"

// reviewDoneMsg is sent when a submitted review completes successfully.
type reviewDoneMsg struct {
	result *review.Result
}

// reviewFailedMsg is sent when a submitted review fails.
type reviewFailedMsg struct {
	err error
}

// scoreTickMsg drives the count-up animation of the score display.
type scoreTickMsg struct{}

// clearNoticeMsg expires the transient failure notice.
type clearNoticeMsg struct{}
