package model

// Privilege is a (securable, permission) grant, encoded as "securable:verb".
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "purchase:read"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// Privilege codes for the purchase securable
const (
	PrivPurchaseRead   = "purchase:read"
	PrivPurchaseCreate = "purchase:create"
	PrivPurchaseUpdate = "purchase:update"
	PrivPurchaseDelete = "purchase:delete"
)

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	{Code: PrivPurchaseRead, Name: "Read Purchase"},
	{Code: PrivPurchaseCreate, Name: "Create Purchase"},
	{Code: PrivPurchaseUpdate, Name: "Update Purchase"},
	{Code: PrivPurchaseDelete, Name: "Delete Purchase"},
}
