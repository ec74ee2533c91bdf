package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cardinal-capital/club-system/internal/core/domain"
)

const collectionHoldings = "holdings"

// HoldingRepository implements ports.HoldingRepository: the shared content
// CRUD plus the price-refresh write.
type HoldingRepository struct {
	*ContentRepository[domain.Holding]
}

func NewHoldingRepository(db *mongo.Database) *HoldingRepository {
	return &HoldingRepository{
		ContentRepository: NewContentRepository[domain.Holding](db, collectionHoldings),
	}
}

// UpdatePrice stores a freshly fetched price without touching the
// user-entered fields.
func (r *HoldingRepository) UpdatePrice(ctx context.Context, id string, price float64, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"current_price":    price,
			"price_updated_at": at.UTC(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
