package models

// Branch is a bank branch keyed by its string branch code
type Branch struct {
	BranchID   string `gorm:"type:varchar(11);primaryKey" json:"branchId"`
	BranchName string `gorm:"type:varchar(50);not null" json:"branchName"`
	IsActive   bool   `gorm:"not null" json:"isActive"`
}

// TableName returns the table name for Branch
func (b *Branch) TableName() string {
	return "branches"
}
