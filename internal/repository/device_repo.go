package repository

import (
	"context"
	"errors"

	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrInvalidID means an identifier is not a well-formed ObjectId hex string
	ErrInvalidID = errors.New("invalid id format")
	// ErrNotFound means no device exists under the given identifier
	ErrNotFound = errors.New("device not found")
)

// DeviceRepository handles the devices collection (read-only for this service)
type DeviceRepository struct {
	col *mongo.Collection
}

func NewDeviceRepository(db *mongo.Database) *DeviceRepository {
	return &DeviceRepository{col: db.Collection("devices")}
}

// FindAll returns every device, unordered as stored
func (r *DeviceRepository) FindAll(ctx context.Context) ([]model.Device, error) {
	return r.Find(ctx, bson.M{})
}

// FindByID looks up a single device by its hex identifier
func (r *DeviceRepository) FindByID(ctx context.Context, id string) (*model.Device, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var device model.Device
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&device); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &device, nil
}

// FindByIDs returns the devices whose identifier is in the given set.
// One malformed identifier fails the whole lookup.
func (r *DeviceRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Device, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, ErrInvalidID
		}
		oids = append(oids, oid)
	}

	return r.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

// Find returns all devices matching the given filter
func (r *DeviceRepository) Find(ctx context.Context, filter bson.M) ([]model.Device, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	devices := make([]model.Device, 0)
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}
