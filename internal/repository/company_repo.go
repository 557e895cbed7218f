package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"personalysis/internal/model"
)

// CompanyRepo handles MongoDB operations for tenant accounts
type CompanyRepo interface {
	Create(ctx context.Context, company *model.Company) (string, error)
	GetByID(ctx context.Context, id string) (*model.Company, error)
	GetByEmail(ctx context.Context, email string) (*model.Company, error)
}

type companyRepo struct {
	collection *mongo.Collection
}

// NewCompanyRepo creates a new company repository
func NewCompanyRepo(db *mongo.Database) CompanyRepo {
	return &companyRepo{
		collection: db.Collection("companies"),
	}
}

func (r *companyRepo) Create(ctx context.Context, company *model.Company) (string, error) {
	company.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, company)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*model.Company, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var company model.Company
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&company)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	company.ID = id
	return &company, nil
}

func (r *companyRepo) GetByEmail(ctx context.Context, email string) (*model.Company, error) {
	var company model.Company
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&company)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}
