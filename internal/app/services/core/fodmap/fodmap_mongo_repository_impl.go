package fodmap

import (
	"context"
	"time"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FodmapMongoRepository struct {
	Collection *mongo.Collection
}

func NewFodmapMongoRepository(db *mongo.Client, dbName string) contracts.FodmapRepository {
	return &FodmapMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFodmapEntries),
	}
}

func (r *FodmapMongoRepository) FindEntriesByPatient(ctx context.Context, patientID string) ([]models.FodmapEntry, error) {
	cursor, err := r.Collection.Find(ctx,
		bson.M{"patientId": patientID},
		options.Find().SetSort(bson.D{{Key: "group", Value: 1}, {Key: "food", Value: 1}}),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	entries := make([]models.FodmapEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}

// UpsertEntry keys on (patient, food) so re-marking a food replaces the
// previous tolerance instead of stacking duplicates.
func (r *FodmapMongoRepository) UpsertEntry(ctx context.Context, entry *models.FodmapEntry) error {
	filter := bson.M{"patientId": entry.PatientID, "food": entry.Food}
	update := bson.M{
		"$set": bson.M{
			"group":     entry.Group,
			"tolerance": entry.Tolerance,
			"notes":     entry.Notes,
			"updatedAt": time.Now(),
		},
		"$setOnInsert": bson.M{
			"patientId": entry.PatientID,
			"food":      entry.Food,
			"createdAt": time.Now(),
		},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
