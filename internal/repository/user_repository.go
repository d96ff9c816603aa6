package repository

type UserRepository interface {
	// FindEmailByID resolves the contact for order notifications.
	FindEmailByID(id uint64) (string, error)
}
