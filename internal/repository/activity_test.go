package repository

import (
	"testing"

	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMarshalMetadata(t *testing.T) {
	t.Run("encodes a plain map", func(t *testing.T) {
		data := marshalMetadata(model.JSONMap{"change": "created"})
		assert.JSONEq(t, `{"change":"created"}`, string(data))
	})

	t.Run("nil metadata encodes as null-safe value", func(t *testing.T) {
		data := marshalMetadata(nil)
		assert.Equal(t, "null", string(data))
	})

	t.Run("unencodable payload falls back to an empty object", func(t *testing.T) {
		data := marshalMetadata(model.JSONMap{"bad": func() {}})
		assert.Equal(t, "{}", string(data))
	})
}
