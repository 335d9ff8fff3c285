package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pogojump/pogojump-api/internal/domain/entity"
)

func TestDecodeDocument_LegacyWithoutReviews(t *testing.T) {
	legacy := `{"products":[{"id":1,"name":"PogoJump Neon","description":"d","price":89,"image":"neon","featured":true}],
		"users":[{"id":1700000000000,"email":"a@x.com","name":"A","password":"h","isAdmin":true,"createdAt":"2024-01-02T03:04:05.678Z"}],
		"orders":[]}`

	doc, err := entity.DecodeDocument([]byte(legacy))
	require.NoError(t, err)
	assert.NotNil(t, doc.Reviews)
	assert.Empty(t, doc.Reviews)
	require.Len(t, doc.Users, 1)
	assert.Equal(t, int64(1700000000000), doc.Users[0].ID)
	assert.Nil(t, doc.Users[0].Avatar)
}

func TestDecodeDocument_Corrupt(t *testing.T) {
	_, err := entity.DecodeDocument([]byte(`{"products": [`))
	assert.Error(t, err)
}

func TestSeedDocument(t *testing.T) {
	doc := entity.SeedDocument()
	require.Len(t, doc.Products, 5)
	assert.Equal(t, "PogoJump Carbon", doc.Products[3].Name)
	assert.False(t, doc.Products[3].Featured)
	assert.Empty(t, doc.Users)
	assert.Empty(t, doc.Orders)
	assert.Empty(t, doc.Reviews)
	assert.Equal(t, int64(5), doc.MaxID())
}

func TestDocument_EncodeRoundTripKeepsShape(t *testing.T) {
	doc := &entity.Document{}
	b, err := doc.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":[],"users":[],"orders":[],"reviews":[]}`, string(b))
}

func TestDocument_UserByEmailIsCaseSensitive(t *testing.T) {
	doc := entity.SeedDocument()
	doc.Users = append(doc.Users, entity.User{ID: 10, Email: "Bob@x.com"})
	assert.NotNil(t, doc.UserByEmail("Bob@x.com"))
	assert.Nil(t, doc.UserByEmail("bob@x.com"))
}
