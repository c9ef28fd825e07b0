// Package tickets decides which fetched Jira tickets a branch is created for
// and shapes them for display.
package tickets

import (
	"strings"

	"github.com/Ilia01/gjb/internal/models"
	"github.com/Ilia01/gjb/internal/utils"
)

// Rejection is an expected outcome that stops the flow without being a fault.
type Rejection int

const (
	NotRejected Rejection = iota
	RejectNoTickets
	RejectMultipleTickets
)

func (r Rejection) String() string {
	switch r {
	case RejectNoTickets:
		return "No in-progress tickets found!"
	case RejectMultipleTickets:
		return "Multiple in-progress tickets found!"
	default:
		return ""
	}
}

// Selection holds either the tickets to branch from or the reason none qualify.
type Selection struct {
	Tickets   []models.FormattedTicket
	Rejection Rejection
	// Found is the number of tickets Jira returned.
	Found int
}

func (s Selection) OK() bool {
	return s.Rejection == NotRejected
}

// Select accepts exactly one in-progress ticket. Zero or several tickets are
// rejected rather than guessed at.
func Select(issues []models.JiraTicket) Selection {
	switch len(issues) {
	case 0:
		return Selection{Rejection: RejectNoTickets}
	case 1:
		return Selection{Tickets: []models.FormattedTicket{Format(issues[0])}, Found: 1}
	default:
		return Selection{Rejection: RejectMultipleTickets, Found: len(issues)}
	}
}

func Format(ticket models.JiraTicket) models.FormattedTicket {
	description := ticket.Fields.Description
	if strings.TrimSpace(description) == "" {
		description = models.NoDescription
	}
	return models.FormattedTicket{
		ID:                ticket.Key,
		BranchDescription: utils.KebabCase(ticket.Fields.Summary),
		Summary:           ticket.Fields.Summary,
		Description:       description,
	}
}
