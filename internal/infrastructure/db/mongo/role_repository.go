package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/usermgmt/identity-service/internal/core/domain"
)

const rolesCollection = "roles"

// RoleRepository implements ports.RoleRepository using MongoDB.
type RoleRepository struct {
	db *mongo.Database
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{db: db}
}

type mongoRole struct {
	ID        int64     `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"created_at"`
}

// EnsureIndexes creates the unique role-name index. Called once at startup.
func (r *RoleRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(rolesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure roles indexes: %w", err)
	}
	return nil
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	id, err := nextSequence(ctx, r.db, rolesCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoRole{ID: id, Name: role.Name, CreatedAt: role.CreatedAt.UTC()}
	if _, err := r.db.Collection(rolesCollection).InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateRole
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}

	created := *role
	created.ID = id
	return &created, nil
}

func (r *RoleRepository) FindByName(ctx context.Context, fullName string) (*domain.Role, error) {
	var mr mongoRole
	if err := r.db.Collection(rolesCollection).FindOne(ctx, bson.M{"name": fullName}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{ID: mr.ID, Name: mr.Name, CreatedAt: mr.CreatedAt}, nil
}
