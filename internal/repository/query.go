package repository

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidYear means the releaseDate filter field is not an integer year
var ErrInvalidYear = errors.New("invalid year format")

// featureSlots are the device fields a storage value is matched against
var featureSlots = []string{"display", "processor", "frontCamera", "rearCamera", "ram", "storage", "os"}

// BuildFilter translates the structured filter fields into a store query.
// Absent fields impose no constraint; all present fields are ANDed, with
// the storage clause ORed across the feature slots.
func BuildFilter(req model.FilterRequest) (bson.M, error) {
	filter := bson.M{}

	if req.Brand != "" {
		filter["brand"] = exactMatch(req.Brand)
	}

	if req.ReleaseDate != "" {
		if _, err := strconv.Atoi(req.ReleaseDate); err != nil {
			return nil, ErrInvalidYear
		}
		filter["releaseDate"] = wordMatch(req.ReleaseDate)
	}

	// nil means the key was absent; an explicit false must still filter
	if req.MarketStatus != nil {
		filter["marketStatus"] = *req.MarketStatus
	}

	if req.Storage != "" {
		or := make([]bson.M, 0, len(featureSlots))
		for _, slot := range featureSlots {
			or = append(or, bson.M{slot: wordMatch(req.Storage)})
		}
		filter["$or"] = or
	}

	return filter, nil
}

// BuildSearch translates a free-text term into an OR query over brand and
// model substrings, plus a whole-word release-year clause when the term is
// numeric. A non-numeric term simply skips the year clause.
func BuildSearch(term string) bson.M {
	or := []bson.M{
		{"brand": substringMatch(term)},
		{"model": substringMatch(term)},
	}

	if _, err := strconv.Atoi(term); err == nil {
		or = append(or, bson.M{"releaseDate": wordMatch(term)})
	}

	return bson.M{"$or": or}
}

// exactMatch is a case-insensitive full-string anchor
func exactMatch(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}

// wordMatch is a case-insensitive whole-word match
func wordMatch(value string) primitive.Regex {
	return primitive.Regex{Pattern: `\b` + regexp.QuoteMeta(value) + `\b`, Options: "i"}
}

// substringMatch is a case-insensitive substring match
func substringMatch(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}
