package models

// Well-known account type names. The minimum-balance floor for each type
// comes from configuration, not from these constants.
const (
	AccountTypeSavings = "Savings"
	AccountTypeCurrent = "Current"
)

// AccountType classifies an account (savings vs. current) and anchors the
// per-type minimum-balance policy
type AccountType struct {
	TypeID   int    `gorm:"primaryKey;autoIncrement" json:"typeId"`
	TypeName string `gorm:"type:varchar(20);not null" json:"typeName"`
	IsActive bool   `gorm:"not null" json:"isActive"`
}

// TableName returns the table name for AccountType
func (t *AccountType) TableName() string {
	return "account_types"
}
