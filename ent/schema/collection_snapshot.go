package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CollectionSnapshot stores the last fetched items of one cached collection
// so a new process can show them while it refreshes.
type CollectionSnapshot struct {
	ent.Schema
}

func (CollectionSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Comment("Collection key, e.g. questions or interventions/<path id>"),
		field.Text("items").
			Comment("JSON array of the collection's items"),
		field.Int("item_count").
			Default(0).
			Comment("Number of items, for listing without decoding"),
		field.Time("fetched_at").
			Comment("When the items were fetched from the API"),
		field.Time("saved_at").
			Comment("When the snapshot was written"),
	}
}

func (CollectionSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fetched_at"),
	}
}
