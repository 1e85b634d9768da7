package model

import (
	"slices"
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/model"
)

const (
	TableName   = "users"
	EntityName  = "user"
	CachePrefix = "user:"

	FieldID        = "id"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldLastLogin = "last_login"
	FieldCreatedAt = "created_at"
)

type Role string

const (
	RoleAdmin     Role = constant.RoleAdmin
	RoleReception Role = constant.RoleReception
)

var Roles = []Role{RoleAdmin, RoleReception}

func ParseRole(value string) (Role, bool) {
	role := Role(value)

	return role, slices.Contains(Roles, role)
}

func (r Role) String() string {
	return string(r)
}

// User is a staff account. Password holds the bcrypt hash.
type User struct {
	ID        string     `db:"id"`
	Username  string     `db:"username"`
	Password  string     `db:"password"`
	Role      Role       `db:"role"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
