package domain

// UserRole represents the authorization tier of a user.
type UserRole string

const (
	RoleAdministrator UserRole = "administrator"
	RoleAdvisor       UserRole = "advisor"
	RoleClient        UserRole = "client"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleAdvisor, RoleClient:
		return true
	}
	return false
}

func (r UserRole) IsAdministrator() bool {
	return r == RoleAdministrator
}

// MessageDirection distinguishes outbound messages from registered inbound ones.
type MessageDirection string

const (
	DirectionSent     MessageDirection = "sent"
	DirectionReceived MessageDirection = "received"
)

func (d MessageDirection) String() string { return string(d) }

func (d MessageDirection) IsValid() bool {
	switch d {
	case DirectionSent, DirectionReceived:
		return true
	}
	return false
}

// ContactKind identifies which upcoming-contact date a customer filter targets.
type ContactKind string

const (
	ContactCall    ContactKind = "call"
	ContactVisit   ContactKind = "visit"
	ContactMeeting ContactKind = "meeting"
)

func (c ContactKind) String() string { return string(c) }

func (c ContactKind) IsValid() bool {
	switch c {
	case ContactCall, ContactVisit, ContactMeeting:
		return true
	}
	return false
}

// ReminderStatus filters reminders by their completion flag.
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderCompleted ReminderStatus = "completed"
	ReminderAll       ReminderStatus = "all"
)

func (s ReminderStatus) String() string { return string(s) }

func (s ReminderStatus) IsValid() bool {
	switch s {
	case ReminderPending, ReminderCompleted, ReminderAll:
		return true
	}
	return false
}
