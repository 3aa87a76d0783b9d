package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeneficiary_Validate(t *testing.T) {
	tests := []struct {
		name        string
		beneficiary Beneficiary
		wantErr     bool
		errMsg      string
	}{
		{
			name: "valid beneficiary",
			beneficiary: Beneficiary{
				BenefName:    "Jordan Smith",
				BenefAccount: 2001,
				BenefIFSC:    "BR002",
				AccountID:    1001,
			},
			wantErr: false,
		},
		{
			name: "blank name",
			beneficiary: Beneficiary{
				BenefName:    "   ",
				BenefAccount: 2001,
				AccountID:    1001,
			},
			wantErr: true,
			errMsg:  "beneficiary name is required",
		},
		{
			name: "missing beneficiary account",
			beneficiary: Beneficiary{
				BenefName: "Jordan Smith",
				AccountID: 1001,
			},
			wantErr: true,
			errMsg:  "beneficiary account is required",
		},
		{
			name: "missing owning account",
			beneficiary: Beneficiary{
				BenefName:    "Jordan Smith",
				BenefAccount: 2001,
			},
			wantErr: true,
			errMsg:  "owning account ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.beneficiary.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomer_Validate(t *testing.T) {
	valid := Customer{FirstName: "Priya"}
	assert.NoError(t, valid.Validate())

	blank := Customer{FirstName: "  "}
	err := blank.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first name is required")
}
