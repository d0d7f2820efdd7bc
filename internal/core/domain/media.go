package domain

// StickerSet describes an installed or removed sticker pack.
type StickerSet struct {
	ID         int64  `yaml:"id"`
	AccessHash int64  `yaml:"access_hash"`
	Title      string `yaml:"title"`
	ShortName  string `yaml:"short_name"`
	Count      int    `yaml:"count"`
	Archived   bool   `yaml:"archived"`
	Masks      bool   `yaml:"masks"`
}

// Document is a downloadable file attached to a message.
type Document struct {
	ID       int64  `yaml:"id"`
	MimeType string `yaml:"mime_type"`
	Size     int64  `yaml:"size"`
	FileName string `yaml:"file_name"`
	Duration int    `yaml:"duration"`
	Type     string `yaml:"type"` // "audio", "voice", "video", ...
}

// AudioPlay is sent when playback of a message's audio starts.
type AudioPlay struct {
	Doc    Document  `yaml:"doc"`
	MID    MessageID `yaml:"mid"`
	PeerID PeerID    `yaml:"peer_id"`
}

// PollAnswer is one option of a poll.
type PollAnswer struct {
	Text   string `yaml:"text"`
	Option string `yaml:"option"`
}

// Poll is the question part of a poll.
type Poll struct {
	ID           int64        `yaml:"id"`
	Question     string       `yaml:"question"`
	Answers      []PollAnswer `yaml:"answers"`
	Closed       bool         `yaml:"closed"`
	Quiz         bool         `yaml:"quiz"`
	MultipleVote bool         `yaml:"multiple_choice"`
}

// PollAnswerVoters is the tally of one option.
type PollAnswerVoters struct {
	Option string `yaml:"option"`
	Voters int    `yaml:"voters"`
	Chosen bool   `yaml:"chosen"`
}

// PollResults is the tally of a poll.
type PollResults struct {
	Results     []PollAnswerVoters `yaml:"results"`
	TotalVoters int                `yaml:"total_voters"`
	Min         bool               `yaml:"min"`
}

// PollUpdate is sent when a poll or its results change.
type PollUpdate struct {
	Poll    Poll        `yaml:"poll"`
	Results PollResults `yaml:"results"`
}

// DownloadProgress reports bytes received for a file.
type DownloadProgress struct {
	FileName string `yaml:"file_name"`
	Done     int64  `yaml:"done"`
	Offset   int64  `yaml:"offset"`
	Total    int64  `yaml:"total"`
}
