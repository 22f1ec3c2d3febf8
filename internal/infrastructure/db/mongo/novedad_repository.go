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

	"github.com/comisarias/novedades-api/internal/core/domain"
	"github.com/comisarias/novedades-api/internal/core/ports"
)

const novedadesCollection = "novedades"

// NovedadRepository implements ports.NovedadRepository on MongoDB. Every
// read and write accepts an optional dependencia that narrows the query, so
// precinct scoping is enforced in the store and not just in handler code.
type NovedadRepository struct {
	coll *mongo.Collection
}

func NewNovedadRepository(db *mongo.Database) *NovedadRepository {
	return &NovedadRepository{coll: db.Collection(novedadesCollection)}
}

type mongoNovedad struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Dependencia string             `bson:"dependencia"`
	Fecha       time.Time          `bson:"fecha"`
	Titulo      string             `bson:"titulo"`
	Descripcion string             `bson:"descripcion"`
	CreatedBy   string             `bson:"created_by"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *NovedadRepository) Create(ctx context.Context, n *domain.Novedad) (*domain.Novedad, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toMongoNovedad(n))
	if err != nil {
		return nil, fmt.Errorf("insert novedad: %w", err)
	}

	created := *n
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *NovedadRepository) FindByID(ctx context.Context, id string, dependencia string) (*domain.Novedad, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := idFilter(id, dependencia)
	if err != nil {
		return nil, err
	}

	var mn mongoNovedad
	if err := r.coll.FindOne(ctx, filter).Decode(&mn); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNovedadNotFound
		}
		return nil, fmt.Errorf("find novedad: %w", err)
	}
	return toDomainNovedad(mn), nil
}

func (r *NovedadRepository) List(ctx context.Context, filter ports.ListNovedadesFilter) ([]*domain.Novedad, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Dependencia != "" {
		query["dependencia"] = filter.Dependencia
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list novedades: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Novedad
	for cur.Next(ctx) {
		var mn mongoNovedad
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode novedad: %w", err)
		}
		out = append(out, toDomainNovedad(mn))
	}
	return out, cur.Err()
}

func (r *NovedadRepository) Update(ctx context.Context, n *domain.Novedad, dependencia string) (*domain.Novedad, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := idFilter(n.ID, dependencia)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"dependencia": n.Dependencia,
		"fecha":       n.Fecha,
		"titulo":      n.Titulo,
		"descripcion": n.Descripcion,
		"updated_at":  n.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("update novedad: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNovedadNotFound
	}
	return n, nil
}

func (r *NovedadRepository) Delete(ctx context.Context, id string, dependencia string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := idFilter(id, dependencia)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete novedad: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNovedadNotFound
	}
	return nil
}

// EnsureIndexes creates the dependencia index used by scoped listing.
func (r *NovedadRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "dependencia", Value: 1}}},
		{Keys: bson.D{{Key: "fecha", Value: -1}}},
	})
	return err
}

// idFilter builds the query for a single record. A malformed id can never
// match anything, so it maps to not-found rather than a 500.
func idFilter(id, dependencia string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNovedadNotFound
	}
	filter := bson.M{"_id": oid}
	if dependencia != "" {
		filter["dependencia"] = dependencia
	}
	return filter, nil
}

func toMongoNovedad(n *domain.Novedad) mongoNovedad {
	return mongoNovedad{
		Dependencia: n.Dependencia,
		Fecha:       n.Fecha,
		Titulo:      n.Titulo,
		Descripcion: n.Descripcion,
		CreatedBy:   n.CreatedBy,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func toDomainNovedad(mn mongoNovedad) *domain.Novedad {
	return &domain.Novedad{
		ID:          mn.ID.Hex(),
		Dependencia: mn.Dependencia,
		Fecha:       mn.Fecha,
		Titulo:      mn.Titulo,
		Descripcion: mn.Descripcion,
		CreatedBy:   mn.CreatedBy,
		CreatedAt:   mn.CreatedAt,
		UpdatedAt:   mn.UpdatedAt,
	}
}
