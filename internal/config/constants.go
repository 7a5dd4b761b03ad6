package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./recipegram.db"

	// DefaultUploadsDir is where uploaded recipe images are stored
	DefaultUploadsDir = "./uploads"

	// DefaultBcryptCost is the bcrypt work factor for password hashing
	DefaultBcryptCost = 10

	// MaxUploadSize caps uploaded recipe images at 5 MiB
	MaxUploadSize = 5 * 1024 * 1024
)
