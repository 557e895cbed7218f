package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"personalysis/internal/model"
)

// ResponseRepo handles MongoDB operations for survey responses. The two Get
// methods return the full row set for a scope; the stats engine reduces it
// in memory.
type ResponseRepo interface {
	Create(ctx context.Context, response *model.SurveyResponse) (string, error)
	GetByID(ctx context.Context, id string) (*model.SurveyResponse, error)
	GetBySurveyID(ctx context.Context, surveyID string) ([]*model.SurveyResponse, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]*model.SurveyResponse, error)
	Delete(ctx context.Context, id string) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Create(ctx context.Context, response *model.SurveyResponse) (string, error) {
	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, response)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	response.ID = oid.Hex()
	return response.ID, nil
}

func (r *responseRepo) GetByID(ctx context.Context, id string) (*model.SurveyResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var response model.SurveyResponse
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&response)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	response.ID = id
	return &response, nil
}

func (r *responseRepo) GetBySurveyID(ctx context.Context, surveyID string) ([]*model.SurveyResponse, error) {
	return r.find(ctx, bson.M{"surveyId": surveyID})
}

func (r *responseRepo) GetByCompanyID(ctx context.Context, companyID string) ([]*model.SurveyResponse, error) {
	return r.find(ctx, bson.M{"companyId": companyID})
}

func (r *responseRepo) find(ctx context.Context, filter bson.M) ([]*model.SurveyResponse, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.SurveyResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
