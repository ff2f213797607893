package domain

import "time"

// FlowState is the current step of the link-building conversation
type FlowState string

const (
	StateAwaitingSource        FlowState = "awaiting_source"
	StateAwaitingMediumGroup   FlowState = "awaiting_medium_group"
	StateAwaitingMedium        FlowState = "awaiting_medium"
	StateAwaitingCampaignGroup FlowState = "awaiting_campaign_group"
	StateAwaitingCampaign      FlowState = "awaiting_campaign"
	StateAwaitingDateChoice    FlowState = "awaiting_date_choice"
	StateAwaitingManualDate    FlowState = "awaiting_manual_date"
)

// Session holds one user's in-progress link-building selections.
// Sessions live in memory only and are lost on restart. Activity
// tracking lives in the session store, not on the record.
type Session struct {
	State    FlowState
	BaseURL  string
	Source   string
	Medium   string
	Campaign string
	Date     string // YYYY-MM-DD, empty when no date was chosen
}

// NewSession starts a fresh session from a base URL, discarding any
// previous selections.
func NewSession(baseURL string) *Session {
	return &Session{
		State:   StateAwaitingSource,
		BaseURL: baseURL,
	}
}

// EditStep is the current step of the catalog-management sub-flow
type EditStep string

const (
	EditStepNone  EditStep = ""
	EditStepName  EditStep = "waiting_name"
	EditStepValue EditStep = "waiting_value"
)

// EditSession tracks one user's progress through the "add new tag" flow
type EditSession struct {
	Category string // category id, e.g. "utm_medium_stories"
	Step     EditStep
	Name     string
}

// DateLayout is the only accepted format for manually entered dates
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
