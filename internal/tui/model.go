package tui

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/facet-dev/facet/internal/review"
)

// Reviewer submits code for review. Satisfied by apiclient.Client.
type Reviewer interface {
	Review(ctx context.Context, code, language string) (*review.Result, error)
}

// state is the presenter lifecycle. A failed review returns to
// stateIdle with a transient notice rather than holding its own state.
type state int

const (
	stateIdle state = iota
	stateSubmitting
	stateSuccess
)

const (
	scoreTickInterval = 25 * time.Millisecond
	noticeDuration    = 4 * time.Second
)

// Model is the review presenter. It holds the last fetched result as
// the single source of truth; the severity filter is a pure projection
// over it and never triggers a new request.
type Model struct {
	reviewer Reviewer
	code     string
	language string

	state     state
	spin      spinner.Model
	result    *review.Result
	display   [4]int
	animating bool
	filter    string
	notice    string
	width     int
}

// New creates a presenter for the given code and language selector.
func New(reviewer Reviewer, code, language string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleSpinner
	return Model{
		reviewer: reviewer,
		code:     code,
		language: language,
		state:    stateIdle,
		spin:     sp,
		filter:   "all",
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state != stateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case reviewDoneMsg:
		m.state = stateSuccess
		m.result = msg.result
		m.display = [4]int{}
		m.animating = true
		return m, tickScores()

	case reviewFailedMsg:
		m.state = stateIdle
		m.notice = msg.err.Error()
		return m, expireNotice()

	case scoreTickMsg:
		return m.advanceScores()

	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "enter", "r":
		return m.submit()
	case "a":
		return m.setFilter("all")
	case "c":
		return m.setFilter(string(review.SeverityCritical))
	case "w":
		return m.setFilter(string(review.SeverityWarning))
	case "s":
		return m.setFilter(string(review.SeveritySuggestion))
	}
	return m, nil
}

// submit starts a review unless one is already in flight. Local checks
// mirror the server's admission control so obviously invalid code never
// costs a round trip.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.state == stateSubmitting {
		return m, nil
	}
	if strings.TrimSpace(m.code) == "" {
		m.notice = "code is empty; nothing to review"
		return m, expireNotice()
	}
	if utf8.RuneCountInString(m.code) > review.MaxCodeChars {
		m.notice = "code exceeds the 50,000 character limit"
		return m, expireNotice()
	}

	m.state = stateSubmitting
	m.notice = ""
	return m, tea.Batch(m.spin.Tick, m.reviewCmd())
}

func (m Model) reviewCmd() tea.Cmd {
	reviewer, code, language := m.reviewer, m.code, m.language
	return func() tea.Msg {
		result, err := reviewer.Review(context.Background(), code, language)
		if err != nil {
			return reviewFailedMsg{err: err}
		}
		return reviewDoneMsg{result: result}
	}
}

// setFilter changes the severity filter. Re-rendering happens from the
// already-fetched result; no request is made.
func (m Model) setFilter(filter string) (tea.Model, tea.Cmd) {
	if m.result == nil {
		return m, nil
	}
	m.filter = filter
	return m, nil
}

// advanceScores steps each displayed score toward its target. Each
// score animates independently and stops once it arrives.
func (m Model) advanceScores() (tea.Model, tea.Cmd) {
	if !m.animating || m.result == nil {
		return m, nil
	}
	targets := m.scoreTargets()
	done := true
	for i := range m.display {
		if m.display[i] >= targets[i] {
			continue
		}
		step := targets[i] / 25
		if step < 1 {
			step = 1
		}
		m.display[i] += step
		if m.display[i] > targets[i] {
			m.display[i] = targets[i]
		}
		if m.display[i] < targets[i] {
			done = false
		}
	}
	if done {
		m.animating = false
		return m, nil
	}
	return m, tickScores()
}

func (m Model) scoreTargets() [4]int {
	return [4]int{
		m.result.OverallScore,
		m.result.ReadabilityScore,
		m.result.StructureScore,
		m.result.MaintainabilityScore,
	}
}

// filteredIssues is a pure projection of the held result through the
// current severity filter.
func (m Model) filteredIssues() []review.Issue {
	if m.result == nil {
		return nil
	}
	return review.FilterIssues(m.result.Issues, m.filter)
}

func tickScores() tea.Cmd {
	return tea.Tick(scoreTickInterval, func(time.Time) tea.Msg {
		return scoreTickMsg{}
	})
}

func expireNotice() tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}
