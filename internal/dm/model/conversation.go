package model

// ConversationIDSeparator joins the two participant emails of a
// conversation identifier.
const ConversationIDSeparator = "_"

// ConversationID derives the conversation key for a pair of participants.
// Participants are sorted lexicographically before joining, so both sides
// of a DM thread always resolve to the same key:
//
//	ConversationID("bob@x.dev", "alice@x.dev") == ConversationID("alice@x.dev", "bob@x.dev")
//
// It is a pure function of the two identifiers and never depends on
// message history or creation order.
func ConversationID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ConversationIDSeparator + b
}
