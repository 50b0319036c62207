package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminSettings is a singleton record; the document id is internal only.
type AdminSettings struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Phone           string             `bson:"phone" json:"phone"`
	Address         string             `bson:"address" json:"address"`
	Email           string             `bson:"email" json:"email"`
	MaintenanceMode bool               `bson:"maintenance_mode" json:"maintenanceMode"`
}

type UpdateSettingsRequest struct {
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	Email           *string `json:"email"`
	MaintenanceMode *bool   `json:"maintenanceMode"`
	// Password changes go through the dedicated endpoint; presence here is rejected.
	Password *string `json:"password"`
}
