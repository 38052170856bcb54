package repositories

import "go.mongodb.org/mongo-driver/mongo"

// IsDuplicate reports whether err is a unique index violation. Insert paths
// use it to turn the storage-level uniqueness guarantee into a conflict
// result even when the application-level check raced.
func IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
