// internal/app/store/storeutil/storeutil.go

// Package storeutil holds helpers shared by the Mongo store packages.
package storeutil

import "go.mongodb.org/mongo-driver/mongo/options"

// Paginate returns find options with skip/limit for a 1-based page.
// Out-of-range inputs fall back to a 20-item first page.
func Paginate(limit, page int64) *options.FindOptions {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	sk := (page - 1) * limit
	return options.Find().SetLimit(limit).SetSkip(sk)
}
