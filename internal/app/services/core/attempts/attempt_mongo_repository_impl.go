package attempts

import (
	"context"
	"time"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttemptMongoRepository struct {
	Collection *mongo.Collection
}

func NewAttemptMongoRepository(db *mongo.Client, dbName string) contracts.AttemptRepository {
	return &AttemptMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAttempts),
	}
}

func (r *AttemptMongoRepository) CreateAttempt(ctx context.Context, attempt *models.Attempt) (string, error) {
	result, err := r.Collection.InsertOne(ctx, attempt)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AttemptMongoRepository) FindAttemptByID(ctx context.Context, attemptID string) (*models.Attempt, error) {
	objectID, err := primitive.ObjectIDFromHex(attemptID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var attempt models.Attempt
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&attempt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	attempt.ID = attemptID
	return &attempt, nil
}

func (r *AttemptMongoRepository) FindAttemptsByPatient(ctx context.Context, patientID string) ([]models.Attempt, error) {
	cursor, err := r.Collection.Find(ctx,
		bson.M{"patientId": patientID},
		options.Find().SetSort(bson.D{{Key: "assignedAt", Value: -1}}),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	attempts := make([]models.Attempt, 0)
	if err := cursor.All(ctx, &attempts); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return attempts, nil
}

func (r *AttemptMongoRepository) StartAttempt(ctx context.Context, attemptID string, startedAt time.Time) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(attemptID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "status": constvars.AttemptStatusPending}
	update := bson.M{"$set": bson.M{
		"status":    constvars.AttemptStatusInProgress,
		"startedAt": startedAt,
		"updatedAt": startedAt,
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount > 0 {
		return true, nil
	}

	// Not pending anymore. Re-entering an in_progress attempt is a no-op;
	// only a completed one refuses to start.
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "status": constvars.AttemptStatusInProgress}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return true, nil
}

func (r *AttemptMongoRepository) SaveAnswers(ctx context.Context, attemptID string, answers []models.Answer) error {
	objectID, err := primitive.ObjectIDFromHex(attemptID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "status": bson.M{"$ne": constvars.AttemptStatusCompleted}}
	update := bson.M{"$set": bson.M{
		"answers":   answers,
		"updatedAt": time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAttemptAlreadyCompleted(attemptID)
	}
	return nil
}

// CompleteAttempt flips the status and stores the result in one update guarded
// by a status precondition, so concurrent submits cannot both win.
func (r *AttemptMongoRepository) CompleteAttempt(ctx context.Context, attemptID string, result *models.Result, completedAt time.Time) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(attemptID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "status": bson.M{"$ne": constvars.AttemptStatusCompleted}}
	update := bson.M{"$set": bson.M{
		"status":      constvars.AttemptStatusCompleted,
		"result":      result,
		"completedAt": completedAt,
		"updatedAt":   completedAt,
	}}
	updateResult, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return updateResult.MatchedCount > 0, nil
}
