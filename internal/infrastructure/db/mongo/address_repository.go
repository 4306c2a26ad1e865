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

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

const collectionAddresses = "ship_from_addresses"

// AddressRepository implements ports.AddressRepository using MongoDB.
type AddressRepository struct {
	col *mongo.Collection
}

var _ ports.AddressRepository = (*AddressRepository)(nil)

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{col: db.Collection(collectionAddresses)}
}

type mongoAddress struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	UserID               string             `bson:"user_id"`
	Name                 string             `bson:"name"`
	Phone                string             `bson:"phone"`
	CompanyName          string             `bson:"company_name,omitempty"`
	AddressLine1         string             `bson:"address_line1"`
	AddressLine2         string             `bson:"address_line2,omitempty"`
	AddressLine3         string             `bson:"address_line3,omitempty"`
	CityLocality         string             `bson:"city_locality"`
	StateProvince        string             `bson:"state_province"`
	PostalCode           string             `bson:"postal_code"`
	CountryCode          string             `bson:"country_code"`
	ResidentialIndicator string             `bson:"address_residential_indicator"`
	CreatedAt            time.Time          `bson:"created_at"`
}

func toMongoAddress(a *domain.SavedAddress) mongoAddress {
	f := a.Address.Fields()
	return mongoAddress{
		UserID:               a.UserID,
		Name:                 f.Name,
		Phone:                f.Phone,
		CompanyName:          f.CompanyName,
		AddressLine1:         f.AddressLine1,
		AddressLine2:         f.AddressLine2,
		AddressLine3:         f.AddressLine3,
		CityLocality:         f.CityLocality,
		StateProvince:        f.StateProvince,
		PostalCode:           f.PostalCode,
		CountryCode:          f.CountryCode,
		ResidentialIndicator: string(f.ResidentialIndicator),
		CreatedAt:            a.CreatedAt,
	}
}

// toDomain re-validates the stored address through domain.NewAddress.
func (m mongoAddress) toDomain() (*domain.SavedAddress, error) {
	addr, err := domain.NewAddress(domain.AddressFields{
		Name:                 m.Name,
		Phone:                m.Phone,
		CompanyName:          m.CompanyName,
		AddressLine1:         m.AddressLine1,
		AddressLine2:         m.AddressLine2,
		AddressLine3:         m.AddressLine3,
		CityLocality:         m.CityLocality,
		StateProvince:        m.StateProvince,
		PostalCode:           m.PostalCode,
		CountryCode:          m.CountryCode,
		ResidentialIndicator: domain.ResidentialIndicator(m.ResidentialIndicator),
	})
	if err != nil {
		return nil, fmt.Errorf("stored address %s: %w", m.ID.Hex(), err)
	}
	return &domain.SavedAddress{
		ID:        m.ID.Hex(),
		UserID:    m.UserID,
		Address:   addr,
		CreatedAt: m.CreatedAt.UTC(),
	}, nil
}

// Create inserts a new saved address.
func (r *AddressRepository) Create(ctx context.Context, a *domain.SavedAddress) (*domain.SavedAddress, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoAddress(a)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain()
}

// ListByUser returns the user's addresses, newest first.
func (r *AddressRepository) ListByUser(ctx context.Context, userID string) ([]domain.SavedAddress, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAddress
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode addresses: %w", err)
	}

	out := make([]domain.SavedAddress, 0, len(docs))
	for _, d := range docs {
		a, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

// FindByID retrieves an address owned by userID.
func (r *AddressRepository) FindByID(ctx context.Context, userID, id string) (*domain.SavedAddress, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAddressNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoAddress
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, err
	}
	return doc.toDomain()
}

// Delete removes an address owned by userID.
func (r *AddressRepository) Delete(ctx context.Context, userID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAddressNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

// EnsureIndexes creates the per-user listing index.
func (r *AddressRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
