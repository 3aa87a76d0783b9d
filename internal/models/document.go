package models

// Document stores an uploaded KYC artifact as raw bytes together with
// its type. Inactive documents are hidden from retrieval.
type Document struct {
	DocID      int    `gorm:"primaryKey;autoIncrement" json:"docId"`
	Content    []byte `gorm:"column:documents" json:"content"`
	CustomerID int    `gorm:"not null;index" json:"customerId"`
	DocTypeID  int    `gorm:"not null" json:"docTypeId"`
	IsActive   bool   `gorm:"not null" json:"isActive"`

	DocType *DocType `gorm:"foreignKey:DocTypeID;references:DocTypeID" json:"docType,omitempty"`
}

// TableName returns the table name for Document
func (d *Document) TableName() string {
	return "documents"
}

// DocType labels a document kind, for example passport or utility bill.
type DocType struct {
	DocTypeID int    `gorm:"primaryKey;autoIncrement" json:"docTypeId"`
	DocType   string `gorm:"type:varchar(50);not null" json:"docType"`
	IsActive  bool   `gorm:"not null" json:"isActive"`
}

// TableName returns the table name for DocType
func (dt *DocType) TableName() string {
	return "doc_types"
}
