package models

import "time"

// Moderation states for peer-support posts.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

// PostMedia is one uploaded attachment on a post.
type PostMedia struct {
	Type     string `bson:"type" json:"type"` // "image" or "video"
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId" json:"publicId"` // for Cloudinary deletion
}

// PostReply is a threaded reply under a post.
type PostReply struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Content   string    `bson:"content" json:"content"`
	Likes     []string  `bson:"likes" json:"likes"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Post is a peer-support feed entry.
type Post struct {
	ID               string      `bson:"id" json:"id"`
	AuthorID         string      `bson:"authorId" json:"authorId"`
	Content          string      `bson:"content" json:"content"`
	Media            []PostMedia `bson:"media" json:"media"`
	Tags             []string    `bson:"tags" json:"tags"`
	Likes            []string    `bson:"likes" json:"likes"`
	Replies          []PostReply `bson:"replies" json:"replies"`
	IsAnonymous      bool        `bson:"isAnonymous" json:"isAnonymous"`
	ModerationStatus string      `bson:"moderationStatus" json:"moderationStatus"`
	Community        string      `bson:"community" json:"community"`
	CreatedAt        time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// PostDetail is a post with author and reply-author summaries attached.
type PostDetail struct {
	Post         `bson:",inline"`
	Author       *UserSummary            `bson:"author,omitempty" json:"author,omitempty"`
	ReplyAuthors map[string]*UserSummary `bson:"-" json:"replyAuthors,omitempty"` // keyed by user id
}

// PostFeed is one page of the community feed.
type PostFeed struct {
	Posts      []PostDetail `json:"posts"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	TotalPages int64        `json:"totalPages"`
}
