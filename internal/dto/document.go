package dto

// DocumentResponse represents a stored document in API responses. The
// payload is base64 encoded by the JSON marshaller.
type DocumentResponse struct {
	DocID      int    `json:"docId"`
	Content    []byte `json:"content"`
	CustomerID int    `json:"customerId"`
	DocType    string `json:"docType"`
}
