// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sync server handlers and middleware and the client sync engine.
//
// Msg* constants are written into the {"error": ...} body of HTTP responses
// or into SyncState messages. Keeping them in one place keeps the wording of
// the API consistent.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgEmailAndPasswordRequired is returned when register or login omit a
	// credential.
	MsgEmailAndPasswordRequired = "Email and password are required"

	// MsgInvalidEmail is returned when the email is not an address.
	MsgInvalidEmail = "Invalid email format"

	// MsgWeakPassword is returned when the password does not satisfy the
	// password policy.
	MsgWeakPassword = "Password must be at least 8 characters and contain uppercase, lowercase, number, and special character (@$!%*?&)"

	// MsgInvalidCredentials is returned when the email/password combination
	// does not match a user.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs.
	MsgInternalServerError = "Internal server error"

	// MsgNoTokenProvided is returned when an authenticated route is called
	// without a bearer token.
	MsgNoTokenProvided = "No token provided"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified or has expired.
	MsgTokenIsExpiredOrInvalid = "Invalid or expired token"

	// MsgUserNotFound is returned when the token subject or a path id does
	// not match any user.
	MsgUserNotFound = "User not found"

	// MsgUserIsBanned is returned on every authenticated route for a banned
	// account. Clients force a logout on it.
	MsgUserIsBanned = "User is banned"

	// MsgAdminRequired is returned when a non-admin calls an admin route.
	MsgAdminRequired = "Admin access required"

	// MsgEmailAlreadyExists is returned when a registration uses an email
	// that already has an account.
	MsgEmailAlreadyExists = "Email already registered"

	// MsgRegistrationDisabled is returned when registration is switched off.
	MsgRegistrationDisabled = "Registration is currently disabled"

	// MsgFavoriteNotFound is returned when deleting a favorite the user does
	// not have.
	MsgFavoriteNotFound = "Favorite not found"

	// MsgAnnouncementNotFound is returned for an unknown announcement id.
	MsgAnnouncementNotFound = "Announcement not found"

	// MsgTitleAndContentRequired is returned when an announcement is created
	// without title or content.
	MsgTitleAndContentRequired = "Title and content are required"

	// MsgCannotDeleteSelf is returned when an admin tries to delete their
	// own account.
	MsgCannotDeleteSelf = "Cannot delete yourself"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found"

	// MsgMethodNotAllowed is returned when a route exists but not for the
	// request method.
	MsgMethodNotAllowed = "Method not allowed"
)

// Success messages of the sync endpoints.
const (
	MsgFavoritesSynced  = "Favorites synced"
	MsgFavoriteRemoved  = "Favorite removed"
	MsgPlaylistsSynced  = "Playlists synced"
	MsgHistorySynced    = "History synced"
	MsgSettingsSynced   = "Settings synced"
	MsgLibrarySynced    = "Library synced"
	MsgProfileUpdated   = "Profile updated"
	MsgRegistered       = "Registration successful"
	MsgLoggedIn         = "Login successful"
	MsgUserDeleted      = "User deleted"
	MsgUserBanned       = "User banned"
	MsgUserUnbanned     = "User unbanned"
	MsgAdminGranted     = "User is now admin"
	MsgAdminRevoked     = "Admin removed"
	MsgAnnouncementGone = "Announcement deleted"
	MsgSystemUpdated    = "System settings updated"
)

// SyncState messages shown by the client.
const (
	MsgFullSyncCompleted = "Full sync completed"
	MsgUploadCompleted   = "Upload completed"
	MsgDownloadCompleted = "Download completed"
	MsgSyncFailed        = "Sync failed"
	MsgUploadFailed      = "Upload failed"
	MsgDownloadFailed    = "Download failed"

	MsgServerUnavailable = "Server unavailable"
	MsgSessionExpired    = "Session expired, please log in again"
	MsgNotLoggedIn       = "Not logged in"
)
