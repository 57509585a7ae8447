package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		s, err := NewSupplier("  Acme Polymers ", " 98765 ", " Industrial Estate ", " 22AAAAA0000A1Z5 ")
		require.NoError(t, err)
		assert.Equal(t, "Acme Polymers", s.Name)
		assert.Equal(t, "98765", s.Phone)
		assert.Equal(t, "Industrial Estate", s.Address)
		assert.Equal(t, "22AAAAA0000A1Z5", s.GST)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewSupplier("  ", "", "", "")
		assert.Error(t, err)
	})
}

func TestSupplier_Update(t *testing.T) {
	s, err := NewSupplier("Old", "", "", "")
	require.NoError(t, err)

	require.NoError(t, s.Update("New", "123", "Addr", "GST1"))
	assert.Equal(t, "New", s.Name)

	require.Error(t, s.Update("", "x", "y", "z"))
	assert.Equal(t, "New", s.Name, "failed update must not mutate")
}

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("Beverages Ltd", "555", "Market Rd", "")
	require.NoError(t, err)
	assert.Equal(t, "Beverages Ltd", c.Name)

	_, err = NewCustomer("", "", "", "")
	assert.Error(t, err)
}
