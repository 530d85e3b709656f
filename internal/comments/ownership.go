package comments

// CanEdit reports whether a requester holding sessionID may edit a comment
// whose stored token is storedSessionID. Only the original author edits;
// there is no admin override for edits.
func CanEdit(storedSessionID, sessionID string) bool {
	return storedSessionID != "" && storedSessionID == sessionID
}

// CanDelete reports whether a requester may delete a comment. Admins may
// delete anything; everyone else needs the matching session token.
func CanDelete(storedSessionID, sessionID string, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return storedSessionID != "" && storedSessionID == sessionID
}
