// Package document defines the day-entry record stored in a
// TiddlyWiki-compatible wiki and the date key that identifies it.
package document

const (
	// Bag is the storage partition every entry lives in.
	Bag = "default"
	// ContentType marks the body as wikitext.
	ContentType = "text/vnd.tiddlywiki"
	// JournalTag classifies freshly created day entries.
	JournalTag = "Journal"
)

// Document is one calendar day's journal entry on the wire. Created and
// Modified are millisecond epoch timestamps, matching what the wiki
// serves back.
type Document struct {
	Bag      string `json:"bag"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	Tags     string `json:"tags"`
	Created  int64  `json:"created"`
	Modified int64  `json:"modified"`
}

// NewForKey synthesizes an empty entry for a day that does not exist
// remotely yet. Created and Modified are both stamped with now.
func NewForKey(key string, now int64) *Document {
	return &Document{
		Bag:      Bag,
		Type:     ContentType,
		Title:    key,
		Text:     "",
		Tags:     JournalTag,
		Created:  now,
		Modified: now,
	}
}
