package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimeImage = "image/"
)

// Pagination defaults for course listing.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)
