package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a MongoDB database. Document ids are
// ObjectIDs, externalized as 24-character hex strings.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to uri and returns a store over the named database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(database),
	}, nil
}

// EnsureIndexes creates the unique index backing one-cart-per-user. Safe to
// call on every startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(Carts).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating cart user_id index: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Create(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("inserting into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("inserting into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *MongoStore) FindByID(ctx context.Context, collection, id string) (Doc, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.findOne(ctx, collection, bson.M{"_id": oid})
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter Filter) (Doc, error) {
	return s.findOne(ctx, collection, bson.M(filter))
}

func (s *MongoStore) findOne(ctx context.Context, collection string, filter bson.M) (Doc, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("finding in %s: %w", collection, err)
	}
	return externalize(doc), nil
}

func (s *MongoStore) List(ctx context.Context, collection string, filter Filter, opts ListOptions) ([]Doc, error) {
	findOpts := options.Find()
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if opts.SortField != "" {
		dir := 1
		if opts.SortDesc {
			dir = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.SortField, Value: dir}})
	}

	cur, err := s.db.Collection(collection).Find(ctx, bson.M(filter), findOpts)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("reading %s cursor: %w", collection, err)
	}

	docs := make([]Doc, 0, len(raw))
	for _, d := range raw {
		docs = append(docs, externalize(d))
	}
	return docs, nil
}

func (s *MongoStore) EnsureOne(ctx context.Context, collection string, filter Filter, setOnInsert Doc) error {
	_, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M(filter),
		bson.M{"$setOnInsert": bson.M(setOnInsert)},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upserting into %s: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) UpsertPush(ctx context.Context, collection string, filter Filter, setOnInsert Doc, field string, value any) error {
	_, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M(filter),
		bson.M{
			"$setOnInsert": bson.M(setOnInsert),
			"$push":        bson.M{field: value},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("pushing to %s.%s: %w", collection, field, err)
	}
	return nil
}

func (s *MongoStore) SetField(ctx context.Context, collection string, filter Filter, field string, value any) error {
	_, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M(filter),
		bson.M{"$set": bson.M{field: value}},
	)
	if err != nil {
		return fmt.Errorf("setting %s.%s: %w", collection, field, err)
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, bson.M(filter))
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", collection, err)
	}
	return n, nil
}

func (s *MongoStore) ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *MongoStore) Name() string {
	return s.db.Name()
}

// externalize replaces the internal _id with a string "id" field.
func externalize(doc bson.M) Doc {
	out := Doc(doc)
	if oid, ok := out["_id"].(primitive.ObjectID); ok {
		delete(out, "_id")
		out["id"] = oid.Hex()
	}
	return out
}
