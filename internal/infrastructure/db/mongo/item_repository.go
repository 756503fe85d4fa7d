package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/validation"
)

const collectionItems = "items"

type ItemRepository struct {
	col *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{col: db.Collection(collectionItems)}
}

// itemDoc is the stored shape. Kept separate from domain.Item so the ObjectID
// handling stays out of the domain.
type itemDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Category        string             `bson:"category"`
	Quantity        int                `bson:"quantity"`
	EstimatedPrice  float64            `bson:"estimated_price"`
	Location        string             `bson:"location"`
	AcquisitionDate time.Time          `bson:"acquisition_date"`
	OwnerID         string             `bson:"owner_id"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (d *itemDoc) toDomain() *domain.Item {
	return &domain.Item{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Category:        d.Category,
		Quantity:        d.Quantity,
		EstimatedPrice:  d.EstimatedPrice,
		Location:        d.Location,
		AcquisitionDate: d.AcquisitionDate,
		OwnerID:         d.OwnerID,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// Create inserts a new item document and returns it with its assigned id.
func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := itemDoc{
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		EstimatedPrice:  item.EstimatedPrice,
		Location:        item.Location,
		AcquisitionDate: item.AcquisitionDate,
		OwnerID:         item.OwnerID,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert item: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

// Get retrieves an item by id, or domain.ErrItemNotFound.
func (r *ItemRepository) Get(ctx context.Context, id string) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrItemNotFound
	}

	var doc itemDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ItemRepository) ListAll(ctx context.Context) ([]*domain.Item, error) {
	return r.list(ctx, bson.M{})
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID})
}

func (r *ItemRepository) list(ctx context.Context, filter bson.M) ([]*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.Item, 0)
	for cur.Next(ctx) {
		var doc itemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Update applies the non-nil fields of patch as a single $set, so the write
// is atomic with respect to the item row.
func (r *ItemRepository) Update(ctx context.Context, id string, patch *validation.ItemPatch) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrItemNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.EstimatedPrice != nil {
		set["estimated_price"] = *patch.EstimatedPrice
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.AcquisitionDate != nil {
		set["acquisition_date"] = *patch.AcquisitionDate
	}
	if patch.OwnerID != nil {
		set["owner_id"] = *patch.OwnerID
	}

	var doc itemDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete removes an item by id, or returns domain.ErrItemNotFound.
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrItemNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the owner-scoped list queries.
func (r *ItemRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
