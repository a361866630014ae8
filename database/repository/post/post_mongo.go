package postRepo

import (
	"context"
	"fmt"
	"time"

	"mindcare/database"
	"mindcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPostRepo is the MongoDB-backed post repository.
type MongoPostRepo struct {
	coll *mongo.Collection
}

// NewMongoPostRepo returns a repository bound to the posts collection.
func NewMongoPostRepo() *MongoPostRepo {
	return &MongoPostRepo{coll: database.GetCollection("posts")}
}

// Create inserts a new post document.
func (repo *MongoPostRepo) Create(post *models.Post) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}
	return nil
}

// GetRaw retrieves a post by its ID without summaries.
func (repo *MongoPostRepo) GetRaw(id string) (*models.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var post models.Post
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching post %s: %w", id, err)
	}
	return &post, nil
}

// AddLike adds the user to the post's like set.
func (repo *MongoPostRepo) AddLike(postID, userID string) error {
	return repo.updateOne(postID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

// RemoveLike removes the user from the post's like set.
func (repo *MongoPostRepo) RemoveLike(postID, userID string) error {
	return repo.updateOne(postID, bson.M{"$pull": bson.M{"likes": userID}})
}

// AddReply appends a reply to the post.
func (repo *MongoPostRepo) AddReply(postID string, reply models.PostReply) error {
	return repo.updateOne(postID, bson.M{"$push": bson.M{"replies": reply}})
}

// ToggleReplyLike adds or removes the user from a reply's like set.
func (repo *MongoPostRepo) ToggleReplyLike(postID, replyID, userID string, like bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": postID, "replies.id": replyID}
	var update bson.M
	if like {
		update = bson.M{"$addToSet": bson.M{"replies.$.likes": userID}}
	} else {
		update = bson.M{"$pull": bson.M{"replies.$.likes": userID}}
	}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating reply like: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("reply %s not found on post %s", replyID, postID)
	}
	return nil
}

// Delete removes the post document.
func (repo *MongoPostRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting post %s: %w", id, err)
	}
	return nil
}

func (repo *MongoPostRepo) updateOne(postID string, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": postID}, update)
	if err != nil {
		return fmt.Errorf("error updating post %s: %w", postID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("post %s not found", postID)
	}
	return nil
}
