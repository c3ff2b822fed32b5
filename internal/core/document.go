// AngelaMos | 2026
// document.go

package core

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is a stored record kept as the caller sent it. Fields are not
// typed so any shape a client writes can be read back.
type Document = bson.M

// DecodeDocument reads a JSON object from r. The _id key is removed so the
// store always assigns it. Whole numbers become int32 or int64 and the rest
// float64.
func DecodeDocument(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("decode document: %w", ErrInvalidInput)
	}

	doc := make(Document, len(raw))
	for k, v := range raw {
		doc[k] = normalize(v)
	}
	delete(doc, "_id")

	return doc, nil
}

// Pick returns the keys of doc in order. Missing keys are written as null.
func Pick(doc Document, keys []string) bson.D {
	out := make(bson.D, 0, len(keys))
	for _, k := range keys {
		out = append(out, bson.E{Key: k, Value: doc[k]})
	}
	return out
}

func normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			if i >= math.MinInt32 && i <= math.MaxInt32 {
				return int32(i)
			}
			return i
		}
		f, _ := val.Float64()
		return f
	case map[string]any:
		m := make(bson.M, len(val))
		for k, inner := range val {
			m[k] = normalize(inner)
		}
		return m
	case []any:
		a := make(bson.A, len(val))
		for i, inner := range val {
			a[i] = normalize(inner)
		}
		return a
	default:
		return val
	}
}
