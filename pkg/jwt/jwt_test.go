package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbillpro/gstbill-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key"
	testIssuer = "gstbill-api"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "company-1", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, companyID, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "company-1", companyID)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "company-1", testIssuer, 60)
	assert.Error(t, err)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "company-1", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("another-secret", token)
	assert.Error(t, err, "a token signed with a different secret must not parse")
}

func TestParse_ExpiredToken(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "company-1", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err, "an expired token must not parse")
}

func TestParse_Garbage(t *testing.T) {
	_, _, err := jwt.Parse(testSecret, "not.a.token")
	assert.Error(t, err)
}
