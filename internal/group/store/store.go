package store

import (
	"context"

	"banter/internal/group"
	"banter/internal/group/model"
	"banter/pkg/cache"
	appErrors "banter/pkg/errors"
	"banter/pkg/logger"
)

// Invalidator evicts a cached entry for a key. The group store uses it
// to drop a group's message-cache entry after a cascade delete.
type Invalidator interface {
	Invalidate(key string)
}

// GroupStore makes groups addressable by id, reading through a TTL cache
// backed by the durable store. Creation and deletion are transactional in
// the repository; this layer owns cache coherence only.
type GroupStore struct {
	repo     group.GroupRepository
	cache    *cache.Cache[*model.GroupWithMembers]
	messages Invalidator
	lastErr  *appErrors.LastError
	logger   *logger.Logger
}

func NewGroupStore(repo group.GroupRepository, c *cache.Cache[*model.GroupWithMembers], messages Invalidator, lastErr *appErrors.LastError, logger logger.Logger) *GroupStore {
	return &GroupStore{
		repo:     repo,
		cache:    c,
		messages: messages,
		lastErr:  lastErr,
		logger:   &logger,
	}
}

// Get returns the group with its resolved members, or (nil, nil) when the
// group does not exist. Absent groups are not cached, so creation by
// another writer is visible immediately.
func (s *GroupStore) Get(ctx context.Context, groupID string) (*model.GroupWithMembers, error) {
	if gwm, ok := s.cache.Get(groupID); ok {
		return gwm, nil
	}

	g, err := s.repo.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}

	members, err := s.repo.GetMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	gwm := &model.GroupWithMembers{Group: g, Members: members}
	s.cache.Set(groupID, gwm)
	return gwm, nil
}

// Set creates the group together with its initial members in one
// transaction. An existing id is a conflict: this accessor does not do
// in-place replacement, and pretending to succeed would hide that.
func (s *GroupStore) Set(ctx context.Context, groupID string, gwm *model.GroupWithMembers) error {
	if groupID == "" {
		return s.fail("group.set", appErrors.ErrEmptyGroupID, nil)
	}
	if gwm == nil || gwm.Group == nil || len(gwm.Members) == 0 {
		return s.fail("group.set", appErrors.ErrNoMembers, map[string]any{"group_id": groupID})
	}

	exists, err := s.repo.GroupExists(ctx, groupID)
	if err != nil {
		return s.fail("group.set", err, map[string]any{"group_id": groupID})
	}
	if exists {
		s.logger.Warn("group already exists, in-place replacement not supported", "group_id", groupID)
		return s.fail("group.set", appErrors.ErrGroupExists, map[string]any{"group_id": groupID})
	}

	g := gwm.Group
	g.ID = groupID

	if err := s.repo.CreateGroupWithMembers(ctx, g, gwm.Members); err != nil {
		return s.fail("group.set", appErrors.ErrGroupCreateFailed(err), map[string]any{"group_id": groupID})
	}

	// Drop any cached entry so the next read resolves the freshly
	// persisted rows (DB-filled timestamps included).
	s.cache.Delete(groupID)
	return nil
}

// Delete cascades messages, members and the group row atomically, then
// evicts both the group and message cache entries before returning.
func (s *GroupStore) Delete(ctx context.Context, groupID string) error {
	if err := s.repo.DeleteGroupWithCascade(ctx, groupID); err != nil {
		if appErrors.Is(err, appErrors.ErrGroupNotFound) {
			return s.fail("group.delete", err, map[string]any{"group_id": groupID})
		}
		return s.fail("group.delete", appErrors.ErrGroupDeleteFailed(err), map[string]any{"group_id": groupID})
	}

	s.cache.Delete(groupID)
	if s.messages != nil {
		s.messages.Invalidate(groupID)
	}
	return nil
}

// Has checks the durable store directly; the group catalog is small and
// existence checks must not be masked by the cache.
func (s *GroupStore) Has(ctx context.Context, groupID string) (bool, error) {
	return s.repo.GroupExists(ctx, groupID)
}

// List enumerates all known group ids straight from the durable store.
func (s *GroupStore) List(ctx context.Context) ([]string, error) {
	groups, err := s.repo.GetAllGroups(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	return ids, nil
}

func (s *GroupStore) Invalidate(groupID string) {
	s.cache.Delete(groupID)
}

func (s *GroupStore) InvalidateAll() {
	s.cache.Clear()
}

// fail records the error in the shared last-error slot and hands it back
// to the caller, so failure detail never lives only in the global record.
func (s *GroupStore) fail(op string, err error, ctx map[string]any) error {
	s.lastErr.Record(op, err, ctx)
	return err
}
