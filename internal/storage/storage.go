package storage

// Slot keys, one per persisted collection. Slots are independent: a
// write to one never touches another, and there is no cross-slot
// transactional atomicity.
const (
	SlotInteractions = "cambliss_social_interactions"
	SlotFollows      = "cambliss_social_follows"
	SlotUserPosts    = "cambliss_user_posts"
)

// KV is the durable key-value backend the gateway mirrors snapshots to.
// Get returns (nil, nil) when the key has never been written.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}
