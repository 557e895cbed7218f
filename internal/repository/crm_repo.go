package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"personalysis/internal/model"
)

// DemoRequestRepo handles MongoDB operations for demo-request leads
type DemoRequestRepo interface {
	Create(ctx context.Context, req *model.DemoRequest) (string, error)
	List(ctx context.Context) ([]*model.DemoRequest, error)
	UpdateStatus(ctx context.Context, id string, status model.DemoRequestStatus) error
}

type demoRequestRepo struct {
	collection *mongo.Collection
}

// NewDemoRequestRepo creates a new demo-request repository
func NewDemoRequestRepo(db *mongo.Database) DemoRequestRepo {
	return &demoRequestRepo{
		collection: db.Collection("demo_requests"),
	}
}

func (r *demoRequestRepo) Create(ctx context.Context, req *model.DemoRequest) (string, error) {
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	if req.Status == "" {
		req.Status = model.DemoRequestNew
	}

	result, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *demoRequestRepo) List(ctx context.Context) ([]*model.DemoRequest, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []*model.DemoRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *demoRequestRepo) UpdateStatus(ctx context.Context, id string, status model.DemoRequestStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

// NotificationRepo handles MongoDB operations for notifications
type NotificationRepo interface {
	Create(ctx context.Context, n *model.Notification) (string, error)
	GetByCompanyID(ctx context.Context, companyID string, limit int64) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, companyID string) error
}

type notificationRepo struct {
	collection *mongo.Collection
}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo(db *mongo.Database) NotificationRepo {
	return &notificationRepo{
		collection: db.Collection("notifications"),
	}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) (string, error) {
	n.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, n)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *notificationRepo) GetByCompanyID(ctx context.Context, companyID string, limit int64) ([]*model.Notification, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"companyId": companyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []*model.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"read": true}})
	return err
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, companyID string) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"companyId": companyID, "read": false}, bson.M{"$set": bson.M{"read": true}})
	return err
}

// NewsletterRepo handles MongoDB operations for newsletter signups
type NewsletterRepo interface {
	Subscribe(ctx context.Context, sub *model.NewsletterSubscriber) error
	GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscriber, error)
}

type newsletterRepo struct {
	collection *mongo.Collection
}

// NewNewsletterRepo creates a new newsletter repository
func NewNewsletterRepo(db *mongo.Database) NewsletterRepo {
	return &newsletterRepo{
		collection: db.Collection("newsletter_subscribers"),
	}
}

func (r *newsletterRepo) Subscribe(ctx context.Context, sub *model.NewsletterSubscriber) error {
	sub.SubscribedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"email": sub.Email}, sub, opts)
	return err
}

func (r *newsletterRepo) GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	var sub model.NewsletterSubscriber
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
