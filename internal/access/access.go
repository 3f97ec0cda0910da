// Package access implements the per-item visibility predicate shared by
// categories, folders, files and attachments. It is pure: no network, no
// storage, only data the caller already fetched.
package access

import "docuport/internal/session"

// RoleRef identifies a role granted access to an item.
type RoleRef struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// AdminRef identifies an individual admin granted access to an item.
type AdminRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name,omitempty"`
	RoleID int    `json:"role_id,omitempty"`
}

// Lists is the pair of access lists the upstream embeds in restrictable
// resources. Both lists empty means the item is unrestricted.
type Lists struct {
	RolesHasAccess  []RoleRef  `json:"roles_has_access,omitempty"`
	AdminsHasAccess []AdminRef `json:"admins_has_access,omitempty"`
}

// Restricted is implemented by any resource carrying access lists.
type Restricted interface {
	AccessLists() Lists
}

// AccessLists lets Lists be embedded to satisfy Restricted.
func (l Lists) AccessLists() Lists { return l }

// HasAccess reports whether the identity may see the item.
//
// Rules, in order: a nil item or absent identity is never visible; an item
// with both lists empty is visible to every authenticated identity; otherwise
// the identity's role id must appear in the role list or the identity's id in
// the admin list. Either list suffices.
func HasAccess(identity *session.Identity, item Restricted) bool {
	if item == nil || identity == nil {
		return false
	}

	lists := item.AccessLists()
	if len(lists.RolesHasAccess) == 0 && len(lists.AdminsHasAccess) == 0 {
		return true
	}

	for _, role := range lists.RolesHasAccess {
		if role.ID == identity.RoleID {
			return true
		}
	}
	for _, admin := range lists.AdminsHasAccess {
		if admin.ID == identity.ID {
			return true
		}
	}
	return false
}
