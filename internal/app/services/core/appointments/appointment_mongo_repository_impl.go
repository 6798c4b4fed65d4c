package appointments

import (
	"context"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) FindAppointmentsByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx,
		bson.M{"patientId": patientID},
		options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}}),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
