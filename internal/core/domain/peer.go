package domain

// PeerID identifies a user, chat or channel. Users are positive, chats and channels negative.
type PeerID int64

// IsUser reports whether the peer is a user.
func (p PeerID) IsUser() bool {
	return p > 0
}

// MessageID is a message identifier local to a peer ("mid").
type MessageID int64

// ChatID identifies a basic group or channel without the peer sign.
type ChatID int64

// ChannelID identifies a channel; 0 means the common update state.
type ChannelID int64

// UserAuth describes an established session.
type UserAuth struct {
	UserID int64 `yaml:"user_id"`
	DCID   int   `yaml:"dc_id"`
	Date   int64 `yaml:"date"`
}

// Chat is the conversation view that is about to become active.
type Chat struct {
	PeerID   PeerID `yaml:"peer_id"`
	ThreadID int64  `yaml:"thread_id"`
	Type     string `yaml:"type"` // "chat", "pinned", "discussion", "scheduled"
}

// PeerPinnedMessages is sent when the pinned set of a peer changes.
type PeerPinnedMessages struct {
	PeerID   PeerID      `yaml:"peer_id"`
	MIDs     []MessageID `yaml:"mids"`
	Pinned   *bool       `yaml:"pinned"`
	UnpinAll bool        `yaml:"unpin_all"`
}

// PeerPinnedHidden is sent when the pinned bar is hidden up to MaxID.
type PeerPinnedHidden struct {
	PeerID PeerID    `yaml:"peer_id"`
	MaxID  MessageID `yaml:"max_id"`
}

// UserTyping is one "is typing" indicator.
type UserTyping struct {
	UserID int64  `yaml:"user_id"`
	Action string `yaml:"action"`
}

// PeerTypings lists everyone currently typing in a peer.
type PeerTypings struct {
	PeerID  PeerID       `yaml:"peer_id"`
	Typings []UserTyping `yaml:"typings"`
}

// PeerRef is a payload that only names a peer.
type PeerRef struct {
	PeerID PeerID `yaml:"peer_id"`
}

// ChannelRef is a payload that only names a channel.
type ChannelRef struct {
	ChannelID ChannelID `yaml:"channel_id"`
}
