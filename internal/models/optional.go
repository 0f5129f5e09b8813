package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OptionalID is a patch field for ObjectID references that keeps track of
// whether the field was present in the request at all. A plain pointer
// cannot tell `"teamId": null` apart from the field being omitted.
type OptionalID struct {
	Set   bool
	Value *primitive.ObjectID
}

// UnmarshalJSON marks the field as set and parses either null or a hex id.
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var hex string
	if err := json.Unmarshal(data, &hex); err != nil {
		return err
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return err
	}
	o.Value = &id
	return nil
}

// MarshalJSON round-trips the field for logging and tests.
func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value.Hex())
}
