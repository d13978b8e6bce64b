package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinehub/rental-service/internal/core/domain"
)

const collectionRentals = "rentals"

type RentalRepository struct {
	col *mongo.Collection
}

func NewRentalRepository(db *mongo.Database) *RentalRepository {
	return &RentalRepository{col: db.Collection(collectionRentals)}
}

func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rental.ID = primitive.NewObjectID()
	_, err := r.col.InsertOne(ctx, rental)
	return err
}

func (r *RentalRepository) FindAll(ctx context.Context) ([]domain.Rental, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date_out", Value: -1}}))
	if err != nil {
		return nil, err
	}

	rentals := []domain.Rental{}
	if err := cur.All(ctx, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *RentalRepository) FindByID(ctx context.Context, id string) (*domain.Rental, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRentalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rental domain.Rental
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&rental); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	return &rental, nil
}

// FindByCustomerAndMovie looks up the rental by its embedded snapshot ids,
// the business keys known to the client at return time.
func (r *RentalRepository) FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	customerOID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, domain.ErrRentalNotFound
	}
	movieOID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, domain.ErrRentalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rental domain.Rental
	err = r.col.FindOne(ctx, bson.M{
		"customer._id": customerOID,
		"movie._id":    movieOID,
	}).Decode(&rental)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	return &rental, nil
}

// MarkReturned commits the terminal state transition. The filter requires
// date_returned to still be unset, so two racing returns cannot both write:
// the loser matches nothing and gets domain.ErrRentalAlreadyReturned.
func (r *RentalRepository) MarkReturned(ctx context.Context, id string, returnedAt time.Time, fee float64) (*domain.Rental, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRentalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rental domain.Rental
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "date_returned": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{
			"date_returned": returnedAt,
			"rental_fee":    fee,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rental)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRentalAlreadyReturned
		}
		return nil, err
	}
	return &rental, nil
}

// EnsureIndexes creates the compound business-key index used by returns.
func (r *RentalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer._id", Value: 1}, {Key: "movie._id", Value: 1}}},
		{Keys: bson.D{{Key: "date_out", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
