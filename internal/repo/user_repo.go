package repo

import (
	"context"

	dom "github.com/nipun221/user-admin-ds/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepo provides account persistence. Not-found lookups return
// mongo.ErrNoDocuments for the service layer to map.
type UserRepo interface {
	Create(ctx context.Context, u dom.User) (dom.User, error)
	FindByID(ctx context.Context, id string) (dom.User, error)
	FindByIdentifier(ctx context.Context, email, phone string, adminOnly bool) (dom.User, error)
	List(ctx context.Context) ([]dom.User, error)
	UpdateProfile(ctx context.Context, id, name, profileImage string) error
	Delete(ctx context.Context, id string) error
}

// MongoUserRepo implements UserRepo on a MongoDB collection.
type MongoUserRepo struct {
	col *mongo.Collection
}

// NewMongoUserRepo returns a new MongoUserRepo over db's "users" collection.
func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{col: db.Collection("users")}
}

// EnsureIndexes creates the partial unique indexes on email and phone.
// Partial so that accounts missing one identifier don't collide on the absent
// field; the store rejecting the second write is the only cross-request
// uniqueness guarantee.
func (r *MongoUserRepo) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"email": bson.M{"$type": "string"}}),
		},
		{
			Keys: bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"phone": bson.M{"$type": "string"}}),
		},
	}
	_, err := r.col.Indexes().CreateMany(ctx, models)
	return err
}

// Create inserts a new account and returns it with the assigned id.
func (r *MongoUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return dom.User{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return u, nil
}

// FindByID returns the account with the given hex id.
func (r *MongoUserRepo) FindByID(ctx context.Context, id string) (dom.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dom.User{}, err
	}
	var u dom.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	return u, err
}

// FindByIdentifier returns the account matching email or phone. With adminOnly
// set, only accounts flagged isAdmin match.
func (r *MongoUserRepo) FindByIdentifier(ctx context.Context, email, phone string, adminOnly bool) (dom.User, error) {
	or := bson.A{}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if phone != "" {
		or = append(or, bson.M{"phone": phone})
	}
	if len(or) == 0 {
		return dom.User{}, mongo.ErrNoDocuments
	}
	filter := bson.M{"$or": or}
	if adminOnly {
		filter["isAdmin"] = true
	}
	var u dom.User
	err := r.col.FindOne(ctx, filter).Decode(&u)
	return u, err
}

// List returns every account.
func (r *MongoUserRepo) List(ctx context.Context) ([]dom.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []dom.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile overwrites name and profileImage only. The password digest is
// deliberately left untouched here; there is no post-creation password path.
func (r *MongoUserRepo) UpdateProfile(ctx context.Context, id, name, profileImage string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": name, "profileImage": profileImage}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes the account with the given hex id. Deleting a missing id is
// not an error.
func (r *MongoUserRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
