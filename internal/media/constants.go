package media

// Storage subdirectories
const (
	DirRecipes = "recipes"
	DirAvatars = "avatars"
)

// Normalization bounds for stored images
const (
	MaxImageWidth  = 1280
	MaxImageHeight = 1280
	JPEGQuality    = 85
	MaxImageBytes  = 10 << 20

	// MaxSourcePixels bounds the decoded size of an upload
	MaxSourcePixels = 40_000_000
)

// Error messages
const (
	ErrMsgDecodeImageFailed = "failed to decode image: %w"
	ErrMsgEncodeImageFailed = "failed to encode image: %w"
	ErrMsgWriteFileFailed   = "failed to write media file: %w"
	ErrMsgRemoveFileFailed  = "failed to remove media file: %w"
)
