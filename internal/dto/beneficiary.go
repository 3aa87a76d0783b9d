package dto

// CreateBeneficiaryRequest is the payload for registering a beneficiary
type CreateBeneficiaryRequest struct {
	BenefName    string `json:"benefName" validate:"required"`
	BenefAccount int64  `json:"benefAccount" validate:"required,positive_id"`
	BenefIFSC    string `json:"benefIfsc" validate:"required,branch_code"`
	AccountID    int64  `json:"accountId" validate:"required,positive_id"`
}

// BeneficiaryResponse represents a beneficiary in API responses
type BeneficiaryResponse struct {
	BenefID      int    `json:"benefId"`
	BenefName    string `json:"benefName"`
	BenefAccount int64  `json:"benefAccount"`
	BenefIFSC    string `json:"benefIfsc"`
	AccountID    int64  `json:"accountId"`
}
