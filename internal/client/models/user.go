package models

import (
	"net/url"
	"strconv"
)

// Roles known to the server. RoleAdmin is the administrative marker.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Profile is the identity record stored next to the credential.
type Profile struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	RealName   string `json:"realName"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role"`
	Status     int    `json:"status"`
	CreateTime string `json:"createTime,omitempty"`
	UpdateTime string `json:"updateTime,omitempty"`
}

func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the login response: the profile plus the issued token.
type LoginResult struct {
	Profile
	Token string `json:"token"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RealName string `json:"realName"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ProfileUpdate carries the fields a user may change on their own profile.
type ProfileUpdate struct {
	RealName string `json:"realName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// UserUpdate is the administrative variant; Role is sent as a query
// parameter when set.
type UserUpdate struct {
	ProfileUpdate
	Role string `json:"role,omitempty"`
}

type PasswordChange struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// User account status values.
const (
	UserDisabled = 0
	UserEnabled  = 1
)

type UserQuery struct {
	Page     int
	Size     int
	Username string
	RealName string
	Role     string
}

func (q UserQuery) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", q.Page)
	setInt(v, "size", q.Size)
	setString(v, "username", q.Username)
	setString(v, "realName", q.RealName)
	setString(v, "role", q.Role)
	return v
}

func setInt(v url.Values, key string, n int) {
	if n > 0 {
		v.Set(key, strconv.Itoa(n))
	}
}

func setInt64(v url.Values, key string, n int64) {
	if n > 0 {
		v.Set(key, strconv.FormatInt(n, 10))
	}
}

func setString(v url.Values, key, s string) {
	if s != "" {
		v.Set(key, s)
	}
}
