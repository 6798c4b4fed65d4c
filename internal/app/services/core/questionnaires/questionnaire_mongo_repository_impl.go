package questionnaires

import (
	"context"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionnaireMongoRepository struct {
	Collection *mongo.Collection
}

func NewQuestionnaireMongoRepository(db *mongo.Client, dbName string) contracts.QuestionnaireRepository {
	return &QuestionnaireMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQuestionnaires),
	}
}

func (r *QuestionnaireMongoRepository) CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) (string, error) {
	result, err := r.Collection.InsertOne(ctx, questionnaire)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *QuestionnaireMongoRepository) UpdateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error {
	objectID, err := primitive.ObjectIDFromHex(questionnaire.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{
		"name":        questionnaire.Name,
		"category":    questionnaire.Category,
		"description": questionnaire.Description,
		"active":      questionnaire.Active,
		"questions":   questionnaire.Questions,
		"scoring":     questionnaire.Scoring,
		"updatedAt":   questionnaire.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *QuestionnaireMongoRepository) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	objectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var questionnaire models.Questionnaire
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&questionnaire)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	questionnaire.ID = questionnaireID
	return &questionnaire, nil
}

func (r *QuestionnaireMongoRepository) FindQuestionnaires(ctx context.Context, category string, activeOnly bool) ([]models.Questionnaire, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	questionnaires := make([]models.Questionnaire, 0)
	if err := cursor.All(ctx, &questionnaires); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return questionnaires, nil
}

func (r *QuestionnaireMongoRepository) DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error {
	objectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
