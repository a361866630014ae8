package post

import (
	"context"
	"fmt"
	"strings"
	"time"

	postRepo "mindcare/database/repository/post"
	"mindcare/models"
	"mindcare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	postMediaFolder  = "mindcare/posts"
	defaultFeedLimit = 10
	uploadTimeout    = 30 * time.Second
)

// Feed returns one page of the approved community feed.
func (s *DefaultPostService) Feed(query postRepo.FeedQuery) (*models.PostFeed, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = defaultFeedLimit
	}

	posts, total, err := s.Repo.Feed(query)
	if err != nil {
		utils.GetLogger().Error("Feed: query failed", zap.Error(err))
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}

	totalPages := total / int64(query.Limit)
	if total%int64(query.Limit) != 0 {
		totalPages++
	}
	return &models.PostFeed{
		Posts:      posts,
		Total:      total,
		Page:       query.Page,
		TotalPages: totalPages,
	}, nil
}

// Create validates and persists a new post, uploading inline media first.
func (s *DefaultPostService) Create(authorID string, in CreateInput) (*models.PostDetail, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(in.Content) == "" {
		return nil, ValidationError{Message: "Content is required"}
	}
	if len(in.Content) > maxPostLength {
		return nil, ValidationError{Message: "Content is too long (max 2000 characters)"}
	}

	media := make([]models.PostMedia, 0, len(in.Media))
	for _, item := range in.Media {
		if item.Data == "" {
			continue
		}
		uploaded, err := s.uploadMedia(item)
		if err != nil {
			logger.Error("Create: media upload failed", zap.Error(err))
			return nil, fmt.Errorf("failed to upload media: %w", err)
		}
		media = append(media, *uploaded)
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	community := in.Community
	if community == "" {
		community = "general"
	}
	// Posts default to anonymous unless the author opts out.
	anonymous := in.IsAnonymous == nil || *in.IsAnonymous

	now := time.Now()
	post := &models.Post{
		ID:               uuid.New().String(),
		AuthorID:         authorID,
		Content:          in.Content,
		Media:            media,
		Tags:             tags,
		Likes:            []string{},
		Replies:          []models.PostReply{},
		IsAnonymous:      anonymous,
		ModerationStatus: models.ModerationApproved,
		Community:        community,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Repo.Create(post); err != nil {
		logger.Error("Create: insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	detail := &models.PostDetail{Post: *post}
	if author, err := s.UserRepo.GetByID(authorID); err == nil && author != nil {
		detail.Author = &models.UserSummary{
			ID:          author.ID,
			FullName:    author.FullName,
			Email:       author.Email,
			ProfilePic:  author.ProfilePic,
			Institution: author.Institution,
		}
	}
	return detail, nil
}

func (s *DefaultPostService) uploadMedia(item MediaInput) (*models.PostMedia, error) {
	mediaType := item.Type
	if mediaType != "video" {
		mediaType = "image"
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()
	res, err := s.Storage.Upload(ctx, item.Data, postMediaFolder)
	if err != nil {
		return nil, err
	}
	return &models.PostMedia{Type: mediaType, URL: res.URL, PublicID: res.PublicID}, nil
}

// ToggleLike likes the post when the caller has not liked it yet and
// removes the like otherwise.
func (s *DefaultPostService) ToggleLike(postID, userID string) (*LikeResult, error) {
	post, err := s.Repo.GetRaw(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}
	if post == nil {
		return nil, NotFoundError{Resource: "Post"}
	}

	liked := contains(post.Likes, userID)
	if liked {
		err = s.Repo.RemoveLike(postID, userID)
	} else {
		err = s.Repo.AddLike(postID, userID)
	}
	if err != nil {
		utils.GetLogger().Error("ToggleLike: update failed", zap.String("postId", postID), zap.Error(err))
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	likes := len(post.Likes)
	if liked {
		likes--
	} else {
		likes++
	}
	return &LikeResult{Likes: likes, IsLiked: !liked}, nil
}

// Reply appends a reply to the post.
func (s *DefaultPostService) Reply(postID, userID, content string) (*models.PostReply, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ValidationError{Message: "Reply content is required"}
	}
	if len(content) > maxReplyLength {
		return nil, ValidationError{Message: "Reply is too long (max 500 characters)"}
	}

	post, err := s.Repo.GetRaw(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to add reply: %w", err)
	}
	if post == nil {
		return nil, NotFoundError{Resource: "Post"}
	}

	now := time.Now()
	reply := models.PostReply{
		ID:        uuid.New().String(),
		UserID:    userID,
		Content:   content,
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.AddReply(postID, reply); err != nil {
		utils.GetLogger().Error("Reply: update failed", zap.String("postId", postID), zap.Error(err))
		return nil, fmt.Errorf("failed to add reply: %w", err)
	}
	return &reply, nil
}

// ToggleReplyLike likes or unlikes a single reply.
func (s *DefaultPostService) ToggleReplyLike(postID, replyID, userID string) (*LikeResult, error) {
	post, err := s.Repo.GetRaw(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle reply like: %w", err)
	}
	if post == nil {
		return nil, NotFoundError{Resource: "Post"}
	}

	var reply *models.PostReply
	for i := range post.Replies {
		if post.Replies[i].ID == replyID {
			reply = &post.Replies[i]
			break
		}
	}
	if reply == nil {
		return nil, NotFoundError{Resource: "Reply"}
	}

	liked := contains(reply.Likes, userID)
	if err := s.Repo.ToggleReplyLike(postID, replyID, userID, !liked); err != nil {
		utils.GetLogger().Error("ToggleReplyLike: update failed", zap.String("postId", postID), zap.Error(err))
		return nil, fmt.Errorf("failed to toggle reply like: %w", err)
	}

	likes := len(reply.Likes)
	if liked {
		likes--
	} else {
		likes++
	}
	return &LikeResult{Likes: likes, IsLiked: !liked}, nil
}

// Delete removes a post, cleaning up its hosted media. Authors may delete
// their own posts; admins may delete any.
func (s *DefaultPostService) Delete(postID, callerID, callerRole string) error {
	logger := utils.GetLogger()

	post, err := s.Repo.GetRaw(postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if post == nil {
		return NotFoundError{Resource: "Post"}
	}
	if post.AuthorID != callerID && callerRole != models.RoleAdmin {
		return AccessDeniedError{Message: "Not authorized to delete this post"}
	}

	for _, item := range post.Media {
		if item.PublicID == "" {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
		err := s.Storage.Delete(ctx, item.PublicID, item.Type)
		cancel()
		if err != nil {
			// The post still goes away; orphaned assets are reclaimable
			// from the Cloudinary console.
			logger.Warn("Delete: media cleanup failed",
				zap.String("postId", postID), zap.String("publicId", item.PublicID), zap.Error(err))
		}
	}

	if err := s.Repo.Delete(postID); err != nil {
		logger.Error("Delete: remove failed", zap.String("postId", postID), zap.Error(err))
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
