package models

// RequestTypeInfo is the catalogue row describing a RequestType.
type RequestTypeInfo struct {
	ID       RequestType `gorm:"primaryKey;autoIncrement:false"`
	TypeName string      `gorm:"size:50;not null;index"`
}

// TableName keeps the catalogue table named after the request types it lists.
func (RequestTypeInfo) TableName() string {
	return "request_types"
}

// DefaultRequestTypes is the catalogue seeded on migration.
var DefaultRequestTypes = []RequestTypeInfo{
	{ID: RequestTypeLocation, TypeName: RequestTypeLocation.String()},
	{ID: RequestTypeMotion, TypeName: RequestTypeMotion.String()},
}
