package cache

// Query keys form a closed set, and every mutation's invalidation edges are
// declared in one static table. A stale key can then only come from a
// missing edge in this file, not from a missed call site.

import "time"

// Key identifies one cached query. The string values double as the Redis
// key segment.
type Key string

const (
	KeyCurrentUserProfile   Key = "currentUserProfile"
	KeyIsAdmin              Key = "isAdmin"
	KeyIsCallerApproved     Key = "isCallerApproved"
	KeyAgentProfileByCaller Key = "agentProfileByCaller"
	KeyPendingAgents        Key = "pendingAgents"
	KeyApprovedAgents       Key = "approvedAgents"
	KeyAllAgentProfiles     Key = "allAgentProfiles"
	KeyAgentLoginTimes      Key = "agentLoginTimes"
	KeyAllCustomers         Key = "allCustomers"
	KeyCustomersByAgent     Key = "customersByAgent"
	KeyAllLeads             Key = "allLeads"
	KeyLeadsByAgent         Key = "leadsByAgent"
	KeyAllFollowUps         Key = "allFollowUps"
	KeyFollowUpsByAgent     Key = "followUpsByAgent"
	KeyWhatsAppMessages     Key = "whatsAppMessages"
	KeyCallLogs             Key = "callLogs"
)

// Keys lists every declared query key.
func Keys() []Key {
	return []Key{
		KeyCurrentUserProfile,
		KeyIsAdmin,
		KeyIsCallerApproved,
		KeyAgentProfileByCaller,
		KeyPendingAgents,
		KeyApprovedAgents,
		KeyAllAgentProfiles,
		KeyAgentLoginTimes,
		KeyAllCustomers,
		KeyCustomersByAgent,
		KeyAllLeads,
		KeyLeadsByAgent,
		KeyAllFollowUps,
		KeyFollowUpsByAgent,
		KeyWhatsAppMessages,
		KeyCallLogs,
	}
}

// TTL returns how long a cached result for the key stays fresh. Values
// track how volatile each query's data is: approval listings and login
// activity churn fastest, the admin flag slowest.
func (k Key) TTL() time.Duration {
	switch k {
	case KeyIsAdmin:
		return 2 * time.Minute
	case KeyCurrentUserProfile, KeyIsCallerApproved, KeyAgentProfileByCaller:
		return time.Minute
	case KeyAllCustomers, KeyCustomersByAgent,
		KeyAllLeads, KeyLeadsByAgent,
		KeyAllFollowUps, KeyFollowUpsByAgent,
		KeyWhatsAppMessages, KeyCallLogs:
		return 30 * time.Second
	case KeyPendingAgents, KeyApprovedAgents:
		return 10 * time.Second
	case KeyAllAgentProfiles, KeyAgentLoginTimes:
		return 5 * time.Second
	default:
		return 30 * time.Second
	}
}

// Mutation identifies a state-changing actor call whose success makes some
// cached queries stale.
type Mutation string

const (
	MutationSaveProfile        Mutation = "saveCallerUserProfile"
	MutationRegisterAgent      Mutation = "registerAgent"
	MutationLoginAgent         Mutation = "loginAgent"
	MutationLogoutAgent        Mutation = "logoutAgent"
	MutationApproveAgent       Mutation = "approveAgent"
	MutationRejectAgent        Mutation = "rejectAgent"
	MutationSetApproval        Mutation = "setApproval"
	MutationAddCustomer        Mutation = "addCustomer"
	MutationAddLead            Mutation = "addLead"
	MutationAddFollowUp        Mutation = "addFollowUp"
	MutationAddWhatsAppMessage Mutation = "addWhatsAppMessage"
	MutationAddCallLog         Mutation = "addCallLog"
)

// invalidations is the static dependency table: which cached queries each
// mutation makes stale.
var invalidations = map[Mutation][]Key{
	MutationSaveProfile:   {KeyCurrentUserProfile},
	MutationRegisterAgent: {KeyPendingAgents, KeyAllAgentProfiles, KeyAgentLoginTimes},
	MutationLoginAgent: {
		KeyAgentLoginTimes, KeyAllAgentProfiles, KeyAgentProfileByCaller, KeyIsCallerApproved,
	},
	MutationLogoutAgent: {KeyAgentLoginTimes, KeyAllAgentProfiles, KeyAgentProfileByCaller},
	MutationApproveAgent: {
		KeyAllAgentProfiles, KeyPendingAgents, KeyApprovedAgents, KeyAgentLoginTimes,
	},
	MutationRejectAgent: {
		KeyAllAgentProfiles, KeyPendingAgents, KeyApprovedAgents, KeyAgentLoginTimes,
	},
	MutationSetApproval:        {KeyPendingAgents, KeyApprovedAgents, KeyAllAgentProfiles},
	MutationAddCustomer:        {KeyCustomersByAgent, KeyAllCustomers},
	MutationAddLead:            {KeyLeadsByAgent, KeyAllLeads},
	MutationAddFollowUp:        {KeyFollowUpsByAgent, KeyAllFollowUps},
	MutationAddWhatsAppMessage: {KeyWhatsAppMessages},
	MutationAddCallLog:         {KeyCallLogs},
}

// InvalidatedBy returns the keys a mutation makes stale. The returned slice
// is a copy; callers may not mutate the table.
func InvalidatedBy(m Mutation) []Key {
	keys := invalidations[m]
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}

// Mutations lists every declared mutation.
func Mutations() []Mutation {
	out := make([]Mutation, 0, len(invalidations))
	for m := range invalidations {
		out = append(out, m)
	}
	return out
}
