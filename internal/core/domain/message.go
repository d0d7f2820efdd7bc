package domain

// Message is the part of a stored message that subscribers look at.
type Message struct {
	MID     MessageID `yaml:"mid"`
	PeerID  PeerID    `yaml:"peer_id"`
	FromID  PeerID    `yaml:"from_id"`
	Date    int64     `yaml:"date"`
	Message string    `yaml:"message"`
	GroupID string    `yaml:"grouped_id"`
	ReplyTo MessageID `yaml:"reply_to_mid"`
	Views   int       `yaml:"views"`
	Pending bool      `yaml:"pending"`
	Out     bool      `yaml:"out"`
}

// MessagesStorage is a peer's message cache, indexed by mid.
type MessagesStorage map[MessageID]*Message

// HistoryAppend is sent when a new message lands at the bottom of a history.
type HistoryAppend struct {
	PeerID    PeerID    `yaml:"peer_id"`
	MessageID MessageID `yaml:"message_id"`
	My        bool      `yaml:"my"`
}

// MessageRef points at a message inside a storage.
// Used by history_update and message_edit.
type MessageRef struct {
	Storage MessagesStorage `yaml:"storage"`
	PeerID  PeerID          `yaml:"peer_id"`
	MID     MessageID       `yaml:"mid"`
}

// NewMessages groups freshly received mids by peer.
type NewMessages map[PeerID][]MessageID

// HistoryDelete is sent when messages are removed from a history.
type HistoryDelete struct {
	PeerID PeerID             `yaml:"peer_id"`
	MIDs   map[MessageID]bool `yaml:"msgs"`
}

// MessageViews carries a new view counter.
type MessageViews struct {
	MID   MessageID `yaml:"mid"`
	Views int       `yaml:"views"`
}

// MessageSent is sent when a pending message gets its server id.
type MessageSent struct {
	Storage     MessagesStorage `yaml:"storage"`
	TempID      MessageID       `yaml:"temp_id"`
	TempMessage *Message        `yaml:"temp_message"`
	MID         MessageID       `yaml:"mid"`
}

// PeerMessages names several messages of one peer.
type PeerMessages struct {
	PeerID PeerID      `yaml:"peer_id"`
	MIDs   []MessageID `yaml:"mids"`
}

// PeerMessage names one message of a peer.
type PeerMessage struct {
	PeerID PeerID    `yaml:"peer_id"`
	MID    MessageID `yaml:"mid"`
}

// AlbumEdit is sent when an album loses items.
type AlbumEdit struct {
	PeerID      PeerID      `yaml:"peer_id"`
	GroupID     string      `yaml:"group_id"`
	DeletedMIDs []MessageID `yaml:"deleted_mids"`
}

// WebpageUpdated is sent when a link preview is resolved.
type WebpageUpdated struct {
	ID   string      `yaml:"id"`
	MIDs []MessageID `yaml:"msgs"`
}
