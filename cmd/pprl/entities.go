package main

import (
	"github.com/datatrails/go-pprl/model"
	"github.com/google/uuid"
)

// ensureIDs assigns a random UUID to every entity with a blank ID,
// mutating the slice in place. Job files that omit IDs (common when
// attribute rows are generated rather than hand-written) still need a
// stable identifier to key results by.
func ensureIDs(entities []model.Entity) {
	for i := range entities {
		if entities[i].ID == "" {
			entities[i].ID = uuid.NewString()
		}
	}
}
