package features

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	t.Run("accepts valid payload", func(t *testing.T) {
		body := []byte(`{"userId":"user-1","payments":[{"amount":850}],"tenants":[{"id":"t1"}]}`)

		req, err := ParseRequest(PaymentAnalysis, body)
		require.NoError(t, err)
		assert.Equal(t, PaymentAnalysis, req.Feature)
		assert.Equal(t, "user-1", req.UserID)
		assert.Len(t, req.Payload["payments"], 1)
	})

	t.Run("keeps unknown extra fields", func(t *testing.T) {
		body := []byte(`{"userId":"user-1","payments":[],"tenants":[],"locale":"es-ES"}`)

		req, err := ParseRequest(PaymentAnalysis, body)
		require.NoError(t, err)
		assert.Equal(t, "es-ES", req.Payload["locale"])
	})

	t.Run("rejects missing required field", func(t *testing.T) {
		body := []byte(`{"userId":"user-1","payments":[]}`)

		_, err := ParseRequest(PaymentAnalysis, body)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRequest))
		assert.Contains(t, err.Error(), "tenants")
	})

	t.Run("rejects wrong field kind", func(t *testing.T) {
		body := []byte(`{"userId":"user-1","payments":"not-an-array","tenants":[]}`)

		_, err := ParseRequest(PaymentAnalysis, body)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRequest))
	})

	t.Run("rejects non-JSON body", func(t *testing.T) {
		_, err := ParseRequest(PaymentAnalysis, []byte("not json"))
		assert.True(t, errors.Is(err, ErrInvalidRequest))
	})

	t.Run("rejects null required field", func(t *testing.T) {
		body := []byte(`{"userId":"user-1","payments":null,"tenants":[]}`)

		_, err := ParseRequest(PaymentAnalysis, body)
		assert.True(t, errors.Is(err, ErrInvalidRequest))
	})

	t.Run("allows absent optional field", func(t *testing.T) {
		body := []byte(`{"userId":"user-1","year":2025,"properties":[],"payments":[]}`)

		_, err := ParseRequest(FiscalAnalysis, body)
		assert.NoError(t, err)
	})

	t.Run("decodes into typed payload", func(t *testing.T) {
		body := []byte(`{"userId":"user-1","tenant":{"name":"Ana"},"topic":"rent increase","tone":"formal"}`)

		req, err := ParseRequest(Communication, body)
		require.NoError(t, err)

		var typed CommunicationRequest
		require.NoError(t, req.Decode(&typed))
		assert.Equal(t, "rent increase", typed.Topic)
		assert.Equal(t, "formal", typed.Tone)
	})
}

func TestValidateResponse(t *testing.T) {
	valid := `{"subject":"Rent update","message":"Dear Ana, ...","variants":[{"tone":"friendly","message":"Hi Ana!"}]}`

	t.Run("passes matching response through unchanged", func(t *testing.T) {
		out, err := ValidateResponse(Communication, valid)
		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(valid), out)
	})

	t.Run("strips markdown fences", func(t *testing.T) {
		out, err := ValidateResponse(Communication, "```json\n"+valid+"\n```")
		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(valid), out)
	})

	t.Run("extracts object surrounded by prose", func(t *testing.T) {
		out, err := ValidateResponse(Communication, "Here is the draft:\n"+valid+"\nLet me know!")
		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(valid), out)
	})

	t.Run("rejects non-JSON text", func(t *testing.T) {
		_, err := ValidateResponse(FiscalAnalysis, "I cannot help with that.")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedResponse))
	})

	t.Run("rejects empty reply", func(t *testing.T) {
		_, err := ValidateResponse(FiscalAnalysis, "   ")
		assert.True(t, errors.Is(err, ErrMalformedResponse))
	})

	t.Run("rejects missing required field", func(t *testing.T) {
		_, err := ValidateResponse(Communication, `{"subject":"Rent update"}`)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedResponse))
		assert.Contains(t, err.Error(), "message")
	})

	t.Run("rejects wrong field type", func(t *testing.T) {
		_, err := ValidateResponse(Communication, `{"subject":42,"message":"hi"}`)
		assert.True(t, errors.Is(err, ErrMalformedResponse))
	})

	t.Run("allows semantically odd values", func(t *testing.T) {
		// Structural validation only: a negative occupancy rate is the
		// model's output to keep, not ours to fix.
		raw := `{"summary":"Quiet month","occupancyRate":-12,"totalIncome":3400,"highlights":[]}`

		out, err := ValidateResponse(MonthlySummary, raw)
		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(raw), out)
	})

	t.Run("allows extra provider fields", func(t *testing.T) {
		raw := `{"subject":"s","message":"m","confidence":0.93}`

		out, err := ValidateResponse(Communication, raw)
		require.NoError(t, err)
		assert.Contains(t, string(out), "confidence")
	})
}
