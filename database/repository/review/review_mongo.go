package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"servlink/database"
	"servlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	return &MongoReviewRepo{coll: database.Collection("reviews")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// Insert relies on the review's deterministic _id: Mongo enforces _id
// uniqueness, so the duplicate check and the write are one atomic operation.
func (r *MongoReviewRepo) Insert(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateReview
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) GetBySubject(subjectID, kind string) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"subjectId": subjectID, "kind": kind}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews for subject %s: %w", subjectID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var rev models.Review
		if err := cursor.Decode(&rev); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepo) Aggregate(subjectID, kind string) (models.RatingSummary, error) {
	summaries, err := r.AggregateForSubjects([]string{subjectID}, kind)
	if err != nil {
		return models.RatingSummary{}, err
	}
	return summaries[subjectID], nil
}

func (r *MongoReviewRepo) AggregateForSubjects(subjectIDs []string, kind string) (map[string]models.RatingSummary, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"subjectId": bson.M{"$in": subjectIDs},
			"kind":      kind,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$subjectId",
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := make(map[string]models.RatingSummary, len(subjectIDs))
	for cursor.Next(ctx) {
		var row struct {
			SubjectID string  `bson:"_id"`
			Average   float64 `bson:"average"`
			Count     int     `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode rating aggregate: %w", err)
		}
		summaries[row.SubjectID] = models.RatingSummary{Average: row.Average, Count: row.Count}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return summaries, nil
}
