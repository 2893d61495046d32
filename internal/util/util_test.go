package util

import (
	"testing"
	"time"

	"relationship_mojo_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashResponsesDeterministic(t *testing.T) {
	responses := []model.QuestionResponse{
		{QuestionID: 1, SelectedOption: model.StringPtr("a")},
		{QuestionID: 2, AnswerText: model.StringPtr("b")},
	}

	first := HashResponses(responses)
	second := HashResponses(responses)
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestHashResponsesSensitiveToContentAndOrder(t *testing.T) {
	a := []model.QuestionResponse{{QuestionID: 1, SelectedOption: model.StringPtr("x")}}
	b := []model.QuestionResponse{{QuestionID: 1, SelectedOption: model.StringPtr("y")}}
	assert.NotEqual(t, HashResponses(a), HashResponses(b))

	ordered := []model.QuestionResponse{{QuestionID: 1}, {QuestionID: 2}}
	reversed := []model.QuestionResponse{{QuestionID: 2}, {QuestionID: 1}}
	assert.NotEqual(t, HashResponses(ordered), HashResponses(reversed))
}

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		BaseModel: model.BaseModel{ID: 7},
		Email:     "test@example.com",
		Role:      model.Member,
	}

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, model.Member, claims.Role)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}}
	token, err := GenerateJWT(user, "right-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "wrong-secret")
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}}
	token, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
