package catalog

import (
	"context"

	"miyako/db"
	"miyako/models"
	"miyako/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// mongoSource serves the snapshot from the service's own content store.
type mongoSource struct{}

// NewMongoSource reads attractions and categories from MongoDB.
func NewMongoSource() Source {
	return mongoSource{}
}

func (mongoSource) FetchAttractions(ctx context.Context) ([]models.Attraction, error) {
	return utils.FindAndDecode[models.Attraction](ctx, db.AttractionsCollection, bson.M{"deletedAt": bson.M{"$exists": false}})
}

func (mongoSource) FetchCategories(ctx context.Context) ([]models.Category, error) {
	return utils.FindAndDecode[models.Category](ctx, db.CategoriesCollection, bson.M{})
}
