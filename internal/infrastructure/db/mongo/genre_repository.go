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

const collectionGenres = "genres"

type GenreRepository struct {
	col *mongo.Collection
}

func NewGenreRepository(db *mongo.Database) *GenreRepository {
	return &GenreRepository{col: db.Collection(collectionGenres)}
}

func (r *GenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	genre.ID = primitive.NewObjectID()
	_, err := r.col.InsertOne(ctx, genre)
	return err
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]domain.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	genres := []domain.Genre{}
	if err := cur.All(ctx, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *GenreRepository) FindByID(ctx context.Context, id string) (*domain.Genre, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGenreNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var genre domain.Genre
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&genre); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, err
	}
	return &genre, nil
}

func (r *GenreRepository) Update(ctx context.Context, id string, name string) (*domain.Genre, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGenreNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var genre domain.Genre
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": name}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&genre)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, err
	}
	return &genre, nil
}

func (r *GenreRepository) Delete(ctx context.Context, id string) (*domain.Genre, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGenreNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var genre domain.Genre
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&genre); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, err
	}
	return &genre, nil
}
