package util_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	err := apperrors.NewDuplicateIdentity("email already registered")
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "DUPLICATE_IDENTITY", domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	domainErr := apperrors.ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestToDomainErrorUniqueViolation(t *testing.T) {
	domainErr := apperrors.ToDomainError(&pgconn.PgError{Code: "23505"})
	assert.Equal(t, "DUPLICATE_IDENTITY", domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
}

func TestToDomainErrorUnknown(t *testing.T) {
	domainErr := apperrors.ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
}

func TestInvalidCredentialsShape(t *testing.T) {
	wrongPassword := apperrors.ToDomainError(apperrors.NewInvalidCredentials())
	unknownEmail := apperrors.ToDomainError(apperrors.NewInvalidCredentials())
	assert.Equal(t, wrongPassword.Message, unknownEmail.Message)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.HTTPStatus)
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Quantity int    `validate:"required,gt=0"`
	}

	assert.Nil(t, apperrors.ValidateStruct(payload{Email: "a@b.com", Quantity: 5}))

	fields := apperrors.ValidateStruct(payload{Email: "nope", Quantity: 0})
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Quantity")
}
