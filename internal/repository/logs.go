package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findByUser decodes the user's entries dated on or after since (all of
// them when since is zero), newest first, into out.
func findByUser(ctx context.Context, coll *mongo.Collection, userID primitive.ObjectID, since time.Time, out interface{}) error {
	filter := bson.M{"user_id": userID}
	if !since.IsZero() {
		filter["date"] = bson.M{"$gte": since}
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

// deleteOwned removes the document only if it belongs to userID.
func deleteOwned(ctx context.Context, coll *mongo.Collection, id, userID primitive.ObjectID) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func insertedID(res *mongo.InsertOneResult) primitive.ObjectID {
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id
}
