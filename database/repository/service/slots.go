// File: database/repository/service/slots.go
package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const slotPath = "availableDates.$[d].timeSlots.$[s]"

// ReserveSlot takes one unit of capacity from the slot. The document filter
// only matches while the slot still has capacity and is not booked, so two
// concurrent reservations cannot both take the last unit.
func (r *mongoServiceRepo) ReserveSlot(ctx context.Context, id, date, startTime string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id": id,
		"availableDates": bson.M{"$elemMatch": bson.M{
			"date": date,
			"timeSlots": bson.M{"$elemMatch": bson.M{
				"startTime": startTime,
				"capacity":  bson.M{"$gt": 0},
				"isBooked":  false,
			}},
		}},
	}
	update := bson.M{
		"$inc": bson.M{slotPath + ".capacity": -1},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{Filters: []interface{}{
		bson.M{"d.date": date},
		bson.M{"s.startTime": startTime, "s.capacity": bson.M{"$gt": 0}, "s.isBooked": false},
	}})

	res, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to reserve slot: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrSlotFull
	}

	// Mark the slot booked once its last unit is gone.
	markBooked := options.Update().SetArrayFilters(options.ArrayFilters{Filters: []interface{}{
		bson.M{"d.date": date},
		bson.M{"s.startTime": startTime, "s.capacity": bson.M{"$lte": 0}},
	}})
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{slotPath + ".isBooked": true}}, markBooked); err != nil {
		return fmt.Errorf("failed to mark slot booked: %w", err)
	}
	return nil
}

// ReleaseSlot gives a unit of capacity back after a cancellation or failed payment.
func (r *mongoServiceRepo) ReleaseSlot(ctx context.Context, id, date, startTime string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{slotPath + ".capacity": 1},
		"$set": bson.M{slotPath + ".isBooked": false, "updatedAt": time.Now().UTC()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{Filters: []interface{}{
		bson.M{"d.date": date},
		bson.M{"s.startTime": startTime},
	}})

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update, opts)
	if err != nil {
		return fmt.Errorf("failed to release slot: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
