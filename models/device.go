package models

// Device is a trackable device entity persisted in the "devices" table.
// Nome is globally unique across all devices. UserID references the owning
// user row; the relation is a plain foreign key, not an in-memory object
// graph, so cascades are expressed as store queries.
type Device struct {
	// ID is the store-assigned identifier.
	ID int64 `json:"id"`

	// Nome is the unique display name of the device.
	Nome string `json:"nome"`

	// UserID is the id of the owning user.
	UserID int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Device model.
func (d Device) TableName() string {
	return "devices"
}
