package databases

// go generate: mockery --name SessionDatabase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cybercell/cybercrime-portal-api/models"
)

const sessionName = "sessions"

// SessionDatabase is the durable store holding serialized identities across
// process restarts. One entry per login, written on login, removed on logout.
type SessionDatabase interface {
	Save(ctx context.Context, session models.Session) error
	Find(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

type sessionDatabase struct {
	db DatabaseHelper
}

// NewSessionDatabase initializes a mongo-backed session store with the provided db connection
func NewSessionDatabase(db DatabaseHelper) SessionDatabase {
	return &sessionDatabase{
		db: db,
	}
}

func (c *sessionDatabase) Save(ctx context.Context, session models.Session) error {
	res, err := c.db.Collection(sessionName).InsertOne(ctx, session)
	if err != nil {
		return err
	}
	if res.Decode() == nil {
		return errors.New("failed to insert session")
	}
	return nil
}

func (c *sessionDatabase) Find(ctx context.Context, id string) (*models.Session, error) {
	session := &models.Session{}
	err := c.db.Collection(sessionName).FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return session, nil
}

// Delete is idempotent: removing an absent session is a no-op
func (c *sessionDatabase) Delete(ctx context.Context, id string) error {
	return c.db.Collection(sessionName).DeleteOne(ctx, bson.M{"_id": id})
}
