package models

// NoDescription is shown for tickets whose description is empty.
const NoDescription = "N/A"

type JiraTicket struct {
	Key    string       `json:"key"`
	Fields TicketFields `json:"fields"`
}

type TicketFields struct {
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
}

// FormattedTicket is a ticket ready to be displayed and turned into a branch.
type FormattedTicket struct {
	ID                string
	BranchDescription string
	Summary           string
	Description       string
}

// BranchName returns "<id>/<branch description>", or the bare id when the
// summary produced no usable slug.
func (t FormattedTicket) BranchName() string {
	if t.BranchDescription == "" {
		return t.ID
	}
	return t.ID + "/" + t.BranchDescription
}
