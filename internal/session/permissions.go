package session

// Action is the closed set of verbs a permission title can carry. The
// free-string "<resource>-<action>" form is only used at the upstream
// boundary; inside the gateway checks go through this enumeration.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
	ActionSend   Action = "send"
	ActionExport Action = "export"
)

var knownActions = map[Action]struct{}{
	ActionCreate: {},
	ActionRead:   {},
	ActionUpdate: {},
	ActionDelete: {},
	ActionManage: {},
	ActionSend:   {},
	ActionExport: {},
}

// Title builds the interchange form of a permission for a resource and action.
func Title(resource string, action Action) string {
	return resource + "-" + string(action)
}

// HasPermission reports whether the session's identity carries the given
// permission title. An absent or empty session answers false, never an error.
func (s *Session) HasPermission(title string) bool {
	if s == nil || s.Identity == nil {
		return false
	}
	for _, p := range s.Identity.Permissions {
		if p.Title == title {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether at least one of the titles is granted.
func (s *Session) HasAnyPermission(titles ...string) bool {
	for _, t := range titles {
		if s.HasPermission(t) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether every title is granted. An empty list
// is vacuously true for an authenticated identity, false otherwise.
func (s *Session) HasAllPermissions(titles ...string) bool {
	if s == nil || s.Identity == nil {
		return false
	}
	for _, t := range titles {
		if !s.HasPermission(t) {
			return false
		}
	}
	return true
}

// Can checks a resource/action pair. Unknown actions fail closed.
func (s *Session) Can(resource string, action Action) bool {
	if _, ok := knownActions[action]; !ok {
		return false
	}
	return s.HasPermission(Title(resource, action))
}

func (s *Session) CanCreate(resource string) bool { return s.Can(resource, ActionCreate) }
func (s *Session) CanRead(resource string) bool   { return s.Can(resource, ActionRead) }
func (s *Session) CanUpdate(resource string) bool { return s.Can(resource, ActionUpdate) }
func (s *Session) CanDelete(resource string) bool { return s.Can(resource, ActionDelete) }
func (s *Session) CanManage(resource string) bool { return s.Can(resource, ActionManage) }
func (s *Session) CanSend(resource string) bool   { return s.Can(resource, ActionSend) }
func (s *Session) CanExport(resource string) bool { return s.Can(resource, ActionExport) }
