package domain

// User carries only what checkout needs: the contact to notify. Account
// management lives in the auth gateway, not here.
type User struct {
	ID    uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Email string `json:"email" gorm:"uniqueIndex;not null"`
}
