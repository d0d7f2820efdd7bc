package hub

import "RootScope/internal/core/domain"

// Sessions and peers.
var (
	UserUpdate         = declare[domain.PeerID]("user_update")
	UserAuth           = declare[domain.UserAuth]("user_auth")
	PeerChanged        = declare[domain.PeerID]("peer_changed")
	PeerChanging       = declare[domain.Chat]("peer_changing")
	PeerPinnedMessages = declare[domain.PeerPinnedMessages]("peer_pinned_messages")
	PeerPinnedHidden   = declare[domain.PeerPinnedHidden]("peer_pinned_hidden")
	PeerTypings        = declare[domain.PeerTypings]("peer_typings")
)

// Folders and the chat list.
var (
	FilterDelete          = declare[domain.DialogFilter]("filter_delete")
	FilterUpdate          = declare[domain.DialogFilter]("filter_update")
	FilterOrder           = declare[[]int]("filter_order")
	DialogDraft           = declare[domain.DialogDraft]("dialog_draft")
	DialogUnread          = declare[domain.PeerRef]("dialog_unread")
	DialogFlush           = declare[domain.PeerRef]("dialog_flush")
	DialogDrop            = declare[domain.DialogDrop]("dialog_drop")
	DialogMigrate         = declare[domain.DialogMigrate]("dialog_migrate")
	DialogNotifySettings  = declare[domain.PeerID]("dialog_notify_settings")
	DialogsMultiupdate    = declare[map[domain.PeerID]*domain.Dialog]("dialogs_multiupdate")
	DialogsArchivedUnread = declare[domain.DialogsArchivedUnread]("dialogs_archived_unread")
)

// History and messages.
var (
	HistoryAppend      = declare[domain.HistoryAppend]("history_append")
	HistoryUpdate      = declare[domain.MessageRef]("history_update")
	HistoryReplyMarkup = declare[domain.PeerRef]("history_reply_markup")
	HistoryMultiappend = declare[domain.NewMessages]("history_multiappend")
	HistoryDelete      = declare[domain.HistoryDelete]("history_delete")
	HistoryForbidden   = declare[domain.PeerID]("history_forbidden")
	HistoryReload      = declare[domain.PeerID]("history_reload")

	MessageEdit        = declare[domain.MessageRef]("message_edit")
	MessageViews       = declare[domain.MessageViews]("message_views")
	MessageSent        = declare[domain.MessageSent]("message_sent")
	MessagesPending    = declare[Void]("messages_pending")
	MessagesRead       = declare[Void]("messages_read")
	MessagesDownloaded = declare[domain.PeerMessages]("messages_downloaded")
	MessagesMediaRead  = declare[domain.PeerMessages]("messages_media_read")

	RepliesUpdated  = declare[domain.Message]("replies_updated")
	ScheduledNew    = declare[domain.PeerMessage]("scheduled_new")
	ScheduledDelete = declare[domain.PeerMessages]("scheduled_delete")
	AlbumEdit       = declare[domain.AlbumEdit]("album_edit")
)

// Media.
var (
	StickersInstalled = declare[domain.StickerSet]("stickers_installed")
	StickersDeleted   = declare[domain.StickerSet]("stickers_deleted")
	AudioPlay         = declare[domain.AudioPlay]("audio_play")
	AudioPause        = declare[Void]("audio_pause")
)

// Sync state, chats and misc server data.
var (
	StateSynchronized  = declare[domain.ChannelID]("state_synchronized")
	StateSynchronizing = declare[domain.ChannelID]("state_synchronizing")
	AvatarUpdate       = declare[domain.PeerID]("avatar_update")
	ChatFullUpdate     = declare[domain.ChatID]("chat_full_update")
	PollUpdate         = declare[domain.PollUpdate]("poll_update")
	ChatUpdate         = declare[domain.ChatID]("chat_update")
	ChannelSettings    = declare[domain.ChannelRef]("channel_settings")
	WebpageUpdated     = declare[domain.WebpageUpdated]("webpage_updated")
	APIUpdate          = declare[domain.Update]("apiUpdate")
	DownloadProgress   = declare[domain.DownloadProgress]("download_progress")
)

// Connectivity, settings and drafts.
var (
	ConnectionStatusChange = declare[domain.ConnectionStatusChange]("connection_status_change")
	SettingsUpdated        = declare[domain.SettingsUpdated]("settings_updated")
	DraftUpdated           = declare[domain.DraftUpdated]("draft_updated")
)

// UI.
var (
	HeavyAnimationStart = declare[Void]("event-heavy-animation-start")
	HeavyAnimationEnd   = declare[Void]("event-heavy-animation-end")
	IMMount             = declare[Void]("im_mount")
	IMTabChange         = declare[int]("im_tab_change")
	OverlayToggle       = declare[bool]("overlay_toggle")
	BackgroundChange    = declare[Void]("background_change")
)
