package handlers

import (
	"net/http"
	"strconv"
	"strings"

	postRepo "mindcare/database/repository/post"
	"mindcare/middleware"
	"mindcare/services/post"

	"github.com/gin-gonic/gin"
)

// PostHandler exposes the peer-support feed endpoints.
type PostHandler struct {
	Service post.PostService
}

// NewPostHandler returns a PostHandler backed by the given service.
func NewPostHandler(svc post.PostService) *PostHandler {
	return &PostHandler{Service: svc}
}

// Feed handles GET /api/posts.
func (h *PostHandler) Feed(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	query := postRepo.FeedQuery{
		Page:      page,
		Limit:     limit,
		Community: c.Query("community"),
		Search:    c.Query("search"),
		AuthorID:  c.Query("authorId"),
		SortAsc:   c.Query("sortOrder") == "asc",
	}
	if tags := c.Query("tags"); tags != "" {
		query.Tags = strings.Split(tags, ",")
	}
	// "general" is the default community and means no filter.
	if query.Community == "general" {
		query.Community = ""
	}

	feed, err := h.Service.Feed(query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"posts":       feed.Posts,
		"totalPages":  feed.TotalPages,
		"currentPage": feed.Page,
		"total":       feed.Total,
	})
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(c *gin.Context) {
	var req struct {
		Content     string `json:"content"`
		Media       []struct {
			Type string `json:"type"`
			Data string `json:"data"`
		} `json:"media"`
		Tags        []string `json:"tags"`
		IsAnonymous *bool    `json:"isAnonymous"`
		Community   string   `json:"community"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	in := post.CreateInput{
		Content:     req.Content,
		Tags:        req.Tags,
		IsAnonymous: req.IsAnonymous,
		Community:   req.Community,
	}
	for _, m := range req.Media {
		in.Media = append(in.Media, post.MediaInput{Type: m.Type, Data: m.Data})
	}

	created, err := h.Service.Create(c.GetString(middleware.CtxUserID), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ToggleLike handles POST /api/posts/:id/like.
func (h *PostHandler) ToggleLike(c *gin.Context) {
	result, err := h.Service.ToggleLike(c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Reply handles POST /api/posts/:id/reply.
func (h *PostHandler) Reply(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	reply, err := h.Service.Reply(c.Param("id"), c.GetString(middleware.CtxUserID), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}

// ToggleReplyLike handles POST /api/posts/:id/reply/:replyId/like.
func (h *PostHandler) ToggleReplyLike(c *gin.Context) {
	result, err := h.Service.ToggleReplyLike(c.Param("id"), c.Param("replyId"), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /api/posts/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	err := h.Service.Delete(c.Param("id"),
		c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxUserRole))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
