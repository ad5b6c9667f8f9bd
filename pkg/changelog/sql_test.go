package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUnparsedSQL(t *testing.T) {
	s := NewUnparsedSQL("  SELECT 1 \n")
	assert.Equal(t, "SELECT 1", s.SQL())
	assert.Equal(t, ";", s.EndDelimiter())
	assert.Equal(t, "SELECT 1", s.String())
}

func TestScript(t *testing.T) {
	got := Script([]SQL{NewUnparsedSQL("SELECT 1"), NewUnparsedSQL("SELECT 2")})
	assert.Equal(t, "SELECT 1;\nSELECT 2;\n", got)
	assert.Empty(t, Script(nil))
}
