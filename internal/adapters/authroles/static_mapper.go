package authroles

import (
	domainauth "github.com/keyhaven/crm-ui-api/internal/domain/auth"
)

// StaticRoleMapper maps identity provider groups to application roles by
// simple string membership rules. Membership in the admin group wins over
// the agent group.
type StaticRoleMapper struct {
	AdminGroup string
	AgentGroup string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	for _, g := range groups {
		if m.AgentGroup != "" && g == m.AgentGroup {
			return domainauth.RoleAgent
		}
	}
	return domainauth.RoleGuest
}
