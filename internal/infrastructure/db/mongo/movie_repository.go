package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinehub/rental-service/internal/core/domain"
)

const collectionMovies = "movies"

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection(collectionMovies)}
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	movie.ID = primitive.NewObjectID()
	_, err := r.col.InsertOne(ctx, movie)
	return err
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, err
	}

	movies := []domain.Movie{}
	if err := cur.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var movie domain.Movie
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&movie); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) Update(ctx context.Context, id string, movie *domain.Movie) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var updated domain.Movie
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"title":             movie.Title,
			"genre":             movie.Genre,
			"number_in_stock":   movie.NumberInStock,
			"daily_rental_rate": movie.DailyRentalRate,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var movie domain.Movie
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&movie); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

// AdjustStock applies delta to number_in_stock using a single $inc, relying
// on the store's per-document atomicity. Decrements additionally filter on
// number_in_stock > 0 so stock can never go negative; a decrement that
// matches no document on an existing movie means the last copy was taken by
// a concurrent rental.
func (r *MovieRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid}
	if delta < 0 {
		filter["number_in_stock"] = bson.M{"$gt": 0}
	}

	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"number_in_stock": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if delta < 0 {
			return domain.ErrMovieOutOfStock
		}
		return domain.ErrMovieNotFound
	}
	return nil
}
