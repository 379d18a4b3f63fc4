package requestRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servlink/database"
	"servlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo creates a new instance of RequestRepository using MongoDB.
func NewMongoRequestRepo() RequestRepository {
	return &MongoRequestRepo{coll: database.Collection("requests")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoRequestRepo) Create(request *models.ServiceRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, request); err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

func (r *MongoRequestRepo) GetByID(id string) (*models.ServiceRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var request models.ServiceRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&request); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch request with id %s: %w", id, err)
	}
	return &request, nil
}

func (r *MongoRequestRepo) GetBySeeker(seekerID string) ([]models.ServiceRequest, error) {
	return r.find(bson.M{"seekerId": seekerID})
}

func (r *MongoRequestRepo) GetByProvider(providerID string) ([]models.ServiceRequest, error) {
	return r.find(bson.M{"providerId": providerID})
}

func (r *MongoRequestRepo) find(filter bson.M) ([]models.ServiceRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.ServiceRequest
	for cursor.Next(ctx) {
		var req models.ServiceRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return requests, nil
}

// CompareAndSetStatus performs the transition as a single FindOneAndUpdate so
// the status guard and the write cannot be split by a concurrent caller.
func (r *MongoRequestRepo) CompareAndSetStatus(id, providerID, expected, next string) (*models.ServiceRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "providerId": providerID, "status": expected}
	update := bson.M{"$set": bson.M{"status": next, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var request models.ServiceRequest
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoPendingMatch
		}
		return nil, fmt.Errorf("failed to transition request %s to %s: %w", id, next, err)
	}
	return &request, nil
}

// AppendMessage uses $push, never a read-modify-write of the whole thread, so
// concurrent appends from both participants all land.
func (r *MongoRequestRepo) AppendMessage(id string, msg models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to append message to request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNoPendingMatch
	}
	return nil
}
