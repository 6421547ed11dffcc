package model

import (
	"time"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

type GroupMember struct {
	GroupID string `bun:",pk"`
	Group   *Group `bun:"rel:belongs-to,join:group_id=id"`

	UserEmail string `bun:",pk"`

	Role        Role   `bun:",notnull,default:'member'"`
	DisplayName string `bun:",notnull"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
