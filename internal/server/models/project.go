package models

import "time"

// Project groups tasks. The owner is always one of the members.
type Project struct {
	ID          string
	Title       string
	Description string
	OwnerID     string
	MemberIDs   []string
	CreatedAt   time.Time
}

func (p *Project) HasMember(accountID string) bool {
	if p.OwnerID == accountID {
		return true
	}
	for _, id := range p.MemberIDs {
		if id == accountID {
			return true
		}
	}
	return false
}
