package model

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time of day. It marshals to an
// ISO-8601 date string in both JSON and BSON.
type Date struct {
	time.Time
}

// NewDate returns the date for the given calendar day, in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

func (d Date) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.Format(dateLayout))
}

func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var value string
	raw := bson.RawValue{Type: t, Value: data}
	if err := raw.Unmarshal(&value); err != nil {
		return err
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}
