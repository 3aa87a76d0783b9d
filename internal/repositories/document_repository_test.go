package repositories

import (
	"testing"

	"bankoffice/internal/database"
	apperrors "bankoffice/internal/errors"
	"bankoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// DocumentRepositoryTestSuite is the test suite for the document repository
type DocumentRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo DocumentRepositoryInterface
}

// SetupTest runs before each test
func (s *DocumentRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewDocumentRepository(s.db.DB)
}

// TearDownTest runs after each test
func (s *DocumentRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

// TestDocumentRepositoryTestSuite runs the test suite
func TestDocumentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentRepositoryTestSuite))
}

// TestGetByCustomerID returns active documents with their types
func (s *DocumentRepositoryTestSuite) TestGetByCustomerID() {
	customer := database.CreateTestCustomer(s.T(), s.db)

	active := &models.Document{
		Content:    []byte("passport scan"),
		CustomerID: customer.CustomerID,
		DocTypeID:  1,
		IsActive:   true,
	}
	require.NoError(s.T(), s.db.Create(active).Error)

	inactive := &models.Document{
		Content:    []byte("old bill"),
		CustomerID: customer.CustomerID,
		DocTypeID:  2,
		IsActive:   false,
	}
	require.NoError(s.T(), s.db.Create(inactive).Error)

	documents, err := s.repo.GetByCustomerID(customer.CustomerID)
	require.NoError(s.T(), err)
	require.Len(s.T(), documents, 1)
	assert.Equal(s.T(), []byte("passport scan"), documents[0].Content)
	require.NotNil(s.T(), documents[0].DocType)
	assert.Equal(s.T(), "Passport", documents[0].DocType.DocType)
}

// TestGetByCustomerID_NoneFound reports a distinct condition when the
// customer has no active documents
func (s *DocumentRepositoryTestSuite) TestGetByCustomerID_NoneFound() {
	customer := database.CreateTestCustomer(s.T(), s.db)

	_, err := s.repo.GetByCustomerID(customer.CustomerID)
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsCode(err, apperrors.DocumentNoneFound))
}
