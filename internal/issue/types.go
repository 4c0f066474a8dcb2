package issue

// Issue is the subset of an issue tracker's REST response consumed by the
// aggregator.
type Issue struct {
	Fields Fields `json:"fields"`
}

// Fields holds the issue metadata rendered into the notification.
type Fields struct {
	Summary   string `json:"summary"`
	Status    *Named `json:"status,omitempty"`
	IssueType *Named `json:"issuetype,omitempty"`
}

// Named wraps tracker objects whose display name is all we need.
type Named struct {
	Name string `json:"name"`
}
