package slotRepo

import (
	"time"

	"vetcare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// deletableStatuses restricts bulk writes to slots that are not booked.
func deletableStatuses() bson.M {
	return bson.M{"$in": bson.A{string(models.SlotAvailable), string(models.SlotDisabled)}}
}

// periodFilter matches slots contained in the period. The upper bound on startTime
// keeps a slot ending at midnight ("00:00") out of earlier periods.
func periodFilter(q PeriodQuery) bson.M {
	return bson.M{
		"vetId":     q.VetID,
		"date":      q.Date,
		"timezone":  q.Timezone,
		"startTime": bson.M{"$gte": q.Start.String(), "$lt": q.End.String()},
		"endTime":   bson.M{"$lte": q.End.String()},
	}
}

func rangeFilter(vetID string, from, to time.Time) bson.M {
	return bson.M{
		"vetId": vetID,
		"date":  bson.M{"$gte": from, "$lte": to},
	}
}

// idsFilter matches the given ids, scoped to vetID when it is set.
func idsFilter(vetID string, ids []string) bson.M {
	filter := bson.M{"id": bson.M{"$in": ids}}
	if vetID != "" {
		filter["vetId"] = vetID
	}
	return filter
}
