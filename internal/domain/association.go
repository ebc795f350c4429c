package domain

type Association struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	WebsiteURL string `json:"website_url"`
	CreatedOn  string `json:"created_on"`
}

type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "Admin"
	MemberRoleMember MemberRole = "Member"
)

// Permissions is the capability set stored per association member.
// HasAllPermissions subsumes the named capabilities; when it is set the
// individual flags are left false.
type Permissions struct {
	HasAllPermissions    bool `json:"hasAllPermissions"`
	CanManagePermissions bool `json:"canManagePermissions"`
	CanInviteMembers     bool `json:"canInviteMembers"`
	CanRemoveMembers     bool `json:"canRemoveMembers"`
	CanManageRoles       bool `json:"canManageRoles"`
	CanManageBaks        bool `json:"canManageBaks"`
	CanApproveBaks       bool `json:"canApproveBaks"`
}

// FullPermissions is the grant given to an association's founding admin.
func FullPermissions() Permissions {
	return Permissions{HasAllPermissions: true}
}

type AssociationMember struct {
	AssociationID string      `json:"association_id"`
	UserID        string      `json:"user_id"`
	Role          MemberRole  `json:"role"`
	Permissions   Permissions `json:"permissions"`
	JoinedOn      string      `json:"joined_on"`
}
