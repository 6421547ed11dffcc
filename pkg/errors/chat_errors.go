package errors

import "fmt"

var (
	// Domain errors — used in store/repository
	ErrGroupNotFound       = NotFound("group not found")
	ErrGroupExists         = AlreadyExists("group already exists")
	ErrMessageNotFound     = NotFound("message not found")
	ErrNoMembers           = InvalidArg("group must have at least one member")
	ErrEmptyGroupID        = InvalidArg("group id cannot be empty")
	ErrEmptyConversationID = InvalidArg("conversation id cannot be empty")
)

func ErrGroupCreateFailed(cause error) error {
	return Wrap(CodeInternal, "failed to create group", cause)
}

func ErrGroupDeleteFailed(cause error) error {
	return Wrap(CodeInternal, "failed to delete group", cause)
}

// ErrPartialAppend reports how many items made it to the durable store
// before the append failed.
func ErrPartialAppend(persisted, total int, cause error) error {
	return Wrap(CodePartialFailure,
		fmt.Sprintf("append persisted %d of %d items", persisted, total), cause)
}
