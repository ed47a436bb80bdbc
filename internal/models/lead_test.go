package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLeadStatusIsValid(t *testing.T) {
	for _, s := range []LeadStatus{LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusClosed} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, LeadStatus("").IsValid())
	assert.False(t, LeadStatus("archived").IsValid())
}

func TestLeadMarshalsIDAsHexString(t *testing.T) {
	id := primitive.NewObjectID()
	lead := Lead{
		ID:        id,
		Name:      "Yossi Cohen",
		Phone:     "050-1234567",
		Email:     "yossi@example.com",
		Source:    "website",
		Status:    LeadStatusNew,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	raw, err := json.Marshal(lead)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, id.Hex(), decoded["id"])
	assert.Len(t, decoded["id"], 24)
}

func TestLeadOmitsEmptyOptionalFields(t *testing.T) {
	raw, err := json.Marshal(Lead{Name: "Ronit Avraham", Status: LeadStatusConverted})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "message")
	assert.NotContains(t, decoded, "productInterest")
}

func TestLeadUpdateIsEmpty(t *testing.T) {
	assert.True(t, LeadUpdate{}.IsEmpty())
	assert.True(t, LeadUpdate{UpdatedAt: time.Now()}.IsEmpty())

	name := "Dana Levi"
	assert.False(t, LeadUpdate{Name: &name}.IsEmpty())

	status := LeadStatusClosed
	assert.False(t, LeadUpdate{Status: &status}.IsEmpty())
}
