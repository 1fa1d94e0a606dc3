package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/catalog"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func TestDefaultCatalog(t *testing.T) {
	provider := catalog.NewDefaultProvider()

	products := provider.List()
	require.Len(t, products, 6)

	// every listed id resolves
	for _, product := range products {
		found, err := provider.Get(product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
		assert.NotEmpty(t, found.Name)
		assert.NotEmpty(t, found.Sizes)
		assert.Greater(t, found.BasePrice, found.WholesalePrice)
	}
}

func TestCatalogOrderPreserved(t *testing.T) {
	provider := catalog.NewDefaultProvider()

	products := provider.List()
	assert.Equal(t, "feather-flag-1", products[0].ID)
	assert.Equal(t, "no-smoking-sign-2", products[len(products)-1].ID)
}

func TestCatalogUnknownID(t *testing.T) {
	provider := catalog.NewDefaultProvider()

	_, err := provider.Get("sparkler-fountain-9000")
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, 404, domainErr.HTTPStatus)
}
