package customer

import (
	"github.com/ventasuite/crm-backend/internal/domain"
)

// Filter defines parameters for listing customers.
type Filter struct {
	// UpcomingContact keeps only customers with the given next-contact
	// date present (call/visit/meeting). nil means no contact filter.
	UpcomingContact *domain.ContactKind

	// Limit is the maximum number of rows to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of rows to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// contactColumn maps a contact kind to its column name.
func contactColumn(kind domain.ContactKind) string {
	switch kind {
	case domain.ContactCall:
		return "next_call_at"
	case domain.ContactVisit:
		return "next_visit_at"
	case domain.ContactMeeting:
		return "next_meeting_at"
	}
	return ""
}
