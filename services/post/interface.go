package post

import (
	postRepo "mindcare/database/repository/post"
	"mindcare/models"
	"mindcare/services/storage"
)

// Content limits enforced on submissions.
const (
	maxPostLength  = 2000
	maxReplyLength = 500
)

// MediaInput is one inline attachment on a new post: a base64 data URI
// plus its declared kind.
type MediaInput struct {
	Type string // "image" or "video"
	Data string
}

// CreateInput carries a new post submission.
type CreateInput struct {
	Content     string
	Media       []MediaInput
	Tags        []string
	IsAnonymous *bool // defaults to true when omitted
	Community   string
}

// LikeResult reports the state of a like set after a toggle.
type LikeResult struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}

// PostService owns the peer-support feed.
type PostService interface {
	Feed(query postRepo.FeedQuery) (*models.PostFeed, error)
	Create(authorID string, in CreateInput) (*models.PostDetail, error)
	ToggleLike(postID, userID string) (*LikeResult, error)
	Reply(postID, userID, content string) (*models.PostReply, error)
	ToggleReplyLike(postID, replyID, userID string) (*LikeResult, error)
	// Delete removes a post and its hosted media. Only the author may
	// delete, unless the caller is an admin.
	Delete(postID, callerID, callerRole string) error
}

// DefaultPostService is the production implementation.
type DefaultPostService struct {
	Repo     postRepo.PostRepository
	UserRepo userSummaryFetcher
	Storage  storage.StorageService
}

// userSummaryFetcher is the slice of the user repository the feed needs to
// attach an author summary to a freshly created post or reply.
type userSummaryFetcher interface {
	GetByID(id string) (*models.User, error)
}

// NotFoundError reports a missing post or reply.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string { return e.Resource + " not found" }

// ValidationError reports rejected input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// AccessDeniedError reports a caller acting on someone else's post.
type AccessDeniedError struct {
	Message string
}

func (e AccessDeniedError) Error() string { return e.Message }
