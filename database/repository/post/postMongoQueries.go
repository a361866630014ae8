package postRepo

import (
	"context"
	"fmt"
	"time"

	"mindcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type postDetailDoc struct {
	models.Post `bson:",inline"`
	Author      *models.UserSummary  `bson:"author"`
	ReplyUsers  []models.UserSummary `bson:"replyUsers"`
}

// Feed returns one page of approved posts with author and reply-author
// summaries attached, plus the total count for the query.
func (repo *MongoPostRepo) Feed(query FeedQuery) ([]models.PostDetail, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	match := bson.M{"moderationStatus": models.ModerationApproved}
	if len(query.Tags) > 0 {
		match["tags"] = bson.M{"$in": query.Tags}
	}
	if query.Community != "" && query.Community != "general" {
		match["community"] = query.Community
	}
	if query.Search != "" {
		match["content"] = bson.M{"$regex": query.Search, "$options": "i"}
	}
	if query.AuthorID != "" {
		match["authorId"] = query.AuthorID
	}

	total, err := repo.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting posts: %w", err)
	}

	sortDir := -1
	if query.SortAsc {
		sortDir = 1
	}
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.M{"createdAt": sortDir}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "authorId",
			"foreignField": "id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "replies.userId",
			"foreignField": "id",
			"as":           "replyUsers",
		}}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("feed aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []postDetailDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("error decoding feed result: %w", err)
	}

	posts := make([]models.PostDetail, 0, len(docs))
	for _, doc := range docs {
		detail := models.PostDetail{Post: doc.Post, Author: doc.Author}
		if len(doc.ReplyUsers) > 0 {
			detail.ReplyAuthors = make(map[string]*models.UserSummary, len(doc.ReplyUsers))
			for i := range doc.ReplyUsers {
				u := doc.ReplyUsers[i]
				detail.ReplyAuthors[u.ID] = &u
			}
		}
		posts = append(posts, detail)
	}
	return posts, total, nil
}
