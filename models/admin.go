// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserCounts holds the sizes of a user's synced collections.
type UserCounts struct {
	Favorites int `json:"favorites"`
	Playlists int `json:"playlists"`
	History   int `json:"playHistory"`
}

// AdminUser is a user row as shown to admins.
type AdminUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Nickname  *string    `json:"nickname,omitempty"`
	Avatar    *string    `json:"avatar,omitempty"`
	IsAdmin   bool       `json:"isAdmin"`
	IsBanned  bool       `json:"isBanned"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Counts    UserCounts `json:"_count"`
}

// DefaultUserListLimit is the page size used when the query omits one.
const DefaultUserListLimit = 20

// UserListQuery selects a page of users. Search matches email or nickname
// case-insensitively.
type UserListQuery struct {
	Page   int
	Limit  int
	Search string
}

// Offset returns the number of rows to skip for the page.
func (q UserListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination describes a page of a listing.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes the page count for total rows.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// UserListResponse is returned by GET /api/admin/users.
type UserListResponse struct {
	Users      []AdminUser `json:"users"`
	Pagination Pagination  `json:"pagination"`
}

// UserDetail is returned by GET /api/admin/users/{id}.
type UserDetail struct {
	User     AdminUser       `json:"user"`
	Settings *SettingsBundle `json:"settings,omitempty"`
}

// BanRequest is the body of POST /api/admin/users/{id}/ban.
type BanRequest struct {
	Ban bool `json:"ban"`
}

// AdminFlagRequest is the body of POST /api/admin/users/{id}/admin.
type AdminFlagRequest struct {
	IsAdmin bool `json:"isAdmin"`
}

// AdminUserResponse acknowledges a moderation action.
type AdminUserResponse struct {
	Message string    `json:"message"`
	User    AdminUser `json:"user"`
}

// Stats holds the service-wide totals.
type Stats struct {
	TotalUsers       int `json:"totalUsers"`
	TodayUsers       int `json:"todayUsers"`
	TotalFavorites   int `json:"totalFavorites"`
	TotalPlaylists   int `json:"totalPlaylists"`
	TotalPlayHistory int `json:"totalPlayHistory"`
}

// StatsResponse is returned by GET /api/admin/stats.
type StatsResponse struct {
	Stats       Stats       `json:"stats"`
	RecentUsers []AdminUser `json:"recentUsers"`
}

// RecentUsersLimit is the number of users listed in Stats.RecentUsers.
const RecentUsersLimit = 10

// SystemSettings holds server-wide switches.
type SystemSettings struct {
	ID                  string    `json:"id"`
	RegistrationEnabled bool      `json:"registrationEnabled"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// SystemSettingsID is the key of the single system settings row.
const SystemSettingsID = "singleton"

// SystemSettingsUpdate is the body of PUT /api/admin/system.
type SystemSettingsUpdate struct {
	RegistrationEnabled *bool `json:"registrationEnabled,omitempty"`
}
