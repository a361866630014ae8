package postRepo

import "mindcare/models"

// FeedQuery narrows and pages the community feed.
type FeedQuery struct {
	Page      int
	Limit     int
	Tags      []string
	Community string
	Search    string
	AuthorID  string
	SortAsc   bool
}

// PostRepository defines data access for peer-support posts.
type PostRepository interface {
	Create(post *models.Post) error
	// GetRaw returns one post without summaries, or (nil, nil) when missing.
	GetRaw(id string) (*models.Post, error)
	// Feed returns one page of approved posts with author summaries attached,
	// plus the total count for the query.
	Feed(query FeedQuery) ([]models.PostDetail, int64, error)
	// AddLike and RemoveLike mutate the post's like set.
	AddLike(postID, userID string) error
	RemoveLike(postID, userID string) error
	// AddReply appends a reply to the post.
	AddReply(postID string, reply models.PostReply) error
	// ToggleReplyLike adds or removes the user from a reply's like set.
	ToggleReplyLike(postID, replyID, userID string, like bool) error
	// Delete removes the post document.
	Delete(id string) error
}
