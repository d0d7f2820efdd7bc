package domain

// Dialog is one entry of the chat list.
type Dialog struct {
	PeerID          PeerID        `yaml:"peer_id"`
	TopMessage      MessageID     `yaml:"top_message"`
	ReadInboxMaxID  MessageID     `yaml:"read_inbox_max_id"`
	ReadOutboxMaxID MessageID     `yaml:"read_outbox_max_id"`
	UnreadCount     int           `yaml:"unread_count"`
	UnreadMentions  int           `yaml:"unread_mentions_count"`
	FolderID        int           `yaml:"folder_id"`
	Pinned          bool          `yaml:"pinned"`
	Index           int64         `yaml:"index"`
	Draft           *DraftMessage `yaml:"draft"`
}

// DialogFilter is a user-defined chat folder.
type DialogFilter struct {
	ID              int      `yaml:"id"`
	Title           string   `yaml:"title"`
	Emoticon        string   `yaml:"emoticon"`
	Contacts        bool     `yaml:"contacts"`
	NonContacts     bool     `yaml:"non_contacts"`
	Groups          bool     `yaml:"groups"`
	Broadcasts      bool     `yaml:"broadcasts"`
	Bots            bool     `yaml:"bots"`
	ExcludeMuted    bool     `yaml:"exclude_muted"`
	ExcludeRead     bool     `yaml:"exclude_read"`
	ExcludeArchived bool     `yaml:"exclude_archived"`
	PinnedPeers     []PeerID `yaml:"pinned_peers"`
	IncludePeers    []PeerID `yaml:"include_peers"`
	ExcludePeers    []PeerID `yaml:"exclude_peers"`
	OrderIndex      int      `yaml:"order_index"`
}

// DraftMessage is an unsent message kept per peer and thread.
type DraftMessage struct {
	Message      string    `yaml:"message"`
	ReplyToMsgID MessageID `yaml:"reply_to_msg_id"`
	NoWebpage    bool      `yaml:"no_webpage"`
	Date         int64     `yaml:"date"`
}

// DialogDraft is sent when the draft shown in the chat list changes.
type DialogDraft struct {
	PeerID PeerID        `yaml:"peer_id"`
	Draft  *DraftMessage `yaml:"draft"`
	Index  int64         `yaml:"index"`
}

// DialogDrop is sent when a dialog leaves the chat list.
type DialogDrop struct {
	PeerID PeerID  `yaml:"peer_id"`
	Dialog *Dialog `yaml:"dialog"`
}

// DialogMigrate is sent when a basic group is upgraded.
type DialogMigrate struct {
	MigrateFrom PeerID `yaml:"migrate_from"`
	MigrateTo   PeerID `yaml:"migrate_to"`
}

// DialogsArchivedUnread carries the unread counter of the archive folder.
type DialogsArchivedUnread struct {
	Count int `yaml:"count"`
}

// DraftUpdated is sent when a draft is saved or cleared.
type DraftUpdated struct {
	PeerID   PeerID        `yaml:"peer_id"`
	ThreadID int64         `yaml:"thread_id"`
	Draft    *DraftMessage `yaml:"draft"`
}
