package model

import (
	"time"
)

type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

type Group struct {
	ID string `bun:",pk"`

	Name       string     `bun:",notnull"`
	CreatedBy  string     `bun:",notnull"` // creator's user email
	Visibility Visibility `bun:",notnull,default:'private'"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// GroupWithMembers is what the groups accessor hands out: the group row
// plus its resolved member list. A persisted group always has at least
// one member (the creator).
type GroupWithMembers struct {
	Group   *Group
	Members []GroupMember
}
