package domain

// Role is an actor's privilege level, ordered from least to most privileged.
type Role string

const (
	RoleClient     Role = "client"
	RoleViewer     Role = "viewer"
	RoleEmployee   Role = "employee"
	RoleAccountant Role = "accountant"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// roleLevels orders the hierarchy numerically so policy checks are a single
// comparison instead of a scatter of per-role conditionals.
var roleLevels = map[Role]int{
	RoleClient:     0,
	RoleViewer:     1,
	RoleEmployee:   2,
	RoleAccountant: 3,
	RoleManager:    4,
	RoleAdmin:      5,
	RoleSuperAdmin: 6,
}

// Level returns the role's position in the hierarchy. Unknown roles sit
// below client, so they never gain mutation options.
func (r Role) Level() int {
	if lvl, ok := roleLevels[r]; ok {
		return lvl
	}
	return -1
}

// AtLeast reports whether r is at or above the given role in the hierarchy.
func (r Role) AtLeast(other Role) bool {
	return r.Level() >= other.Level() && r.Level() >= 0
}

// Valid reports whether the role is one of the known hierarchy members.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// adminOnly lists the destructive terminal moves hidden from everyone below
// admin. Adding a state to a kind's table does not require touching this
// unless the new state needs the same protection.
var adminOnly = map[Kind][]Status{
	KindInvoice: {InvoiceVoid},
	KindPayment: {PaymentRefunded},
}

// financialKinds are the kinds an accountant may operate on at all.
var financialKinds = map[Kind]bool{
	KindQuote:   true,
	KindInvoice: true,
	KindPayment: true,
}

// employeeMoves is the narrow forward-only allowlist for employees, keyed by
// kind and current state.
var employeeMoves = map[Kind]map[Status][]Status{
	KindQuote: {
		QuoteDraft: {QuoteSent},
	},
	KindAppointment: {
		AppointmentScheduled: {AppointmentConfirmed},
		AppointmentConfirmed: {AppointmentCompleted},
	},
}

// AvailableTransitions narrows the raw reachable set for a kind and state to
// the moves the given role may invoke. The result is always a subset of
// ReachableStates; read-only roles get nothing.
func AvailableTransitions(kind Kind, from Status, role Role) []Status {
	reachable := ReachableStates(kind, from)

	switch {
	case role.AtLeast(RoleAdmin):
		return reachable
	case role == RoleManager:
		return withoutAdminOnly(kind, reachable)
	case role == RoleAccountant:
		if !financialKinds[kind] {
			return nil
		}
		return withoutAdminOnly(kind, reachable)
	case role == RoleEmployee:
		allowed := employeeMoves[kind][from]
		var out []Status
		for _, s := range reachable {
			for _, a := range allowed {
				if s == a {
					out = append(out, s)
				}
			}
		}
		return out
	}

	// viewer, client, and anything unrecognized are read-only.
	return nil
}

func withoutAdminOnly(kind Kind, states []Status) []Status {
	restricted := adminOnly[kind]
	var out []Status
	for _, s := range states {
		hidden := false
		for _, r := range restricted {
			if s == r {
				hidden = true
				break
			}
		}
		if !hidden {
			out = append(out, s)
		}
	}
	return out
}
