package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestForm_TextColumnsAreUnbounded(t *testing.T) {
	s, err := schema.Parse(&Form{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, name := range []string{"Title", "Description", "HeaderImage"} {
		field := s.LookUpField(name)
		require.NotNil(t, field, name)
		assert.Equal(t, "text", field.TagSettings["TYPE"], name)
		assert.Zero(t, field.Size, name)
	}
	assert.True(t, s.LookUpField("Title").NotNull)
}
